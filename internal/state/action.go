// Package state holds the client-side state tree for the Tastebud SDK:
// four independent slices (user, recipes, singleRecipe, userRecipes),
// one tagged-variant action type per operation, and a pure reducer per
// slice. The Store serializes dispatches so every action is applied
// atomically; nothing outside a reducer ever writes to the tree.
package state

// Action is a state-transition descriptor. Each variant is a plain
// struct; reducers type-switch on the concrete type and return the
// input state unchanged for variants they do not recognize.
type Action interface {
	isAction()
}

// User slice actions.

type UserSignupRequest struct{}
type UserSignupSuccess struct{ User AuthenticatedUser }
type UserSignupFailure struct{ Err APIError }

type UserSigninRequest struct{}
type UserSigninSuccess struct{ User AuthenticatedUser }
type UserSigninFailure struct{ Err APIError }

type UserLogoutRequest struct{}
type UserLogoutSuccess struct{}

type FetchProfileRequest struct{}
type FetchProfileSuccess struct{ Profile UserProfile }
type FetchProfileFailure struct{ Err APIError }

type EditProfileRequest struct{}
type EditProfileSuccess struct{ Profile UserProfile }
type EditProfileFailure struct{ Err APIError }

type UploadUserImageRequest struct{}
type UploadUserImageSuccess struct{ URL string }
type UploadUserImageFailure struct{ Err APIError }

// Recipes slice actions.

type FetchRecipesRequest struct{}
type FetchRecipesSuccess struct {
	Recipes    []Recipe
	TotalCount int
}
type FetchRecipesFailure struct{ Err APIError }

// AdjustRecipeVotes applies relative vote deltas to the recipe with the
// given id wherever it appears (recipe list and recipe detail). Deltas,
// not absolutes, so a concurrent unrelated fetch cannot clobber a vote
// that was just applied.
type AdjustRecipeVotes struct {
	RecipeID  string
	Upvotes   int
	Downvotes int
}

// AdjustRecipeFavorites applies a relative favorites-count delta to the
// recipe with the given id wherever it appears.
type AdjustRecipeFavorites struct {
	RecipeID string
	Delta    int
}

// VoteRecipeFailure reports a rejected vote. No counters move; the
// error lands in the slices whose counters the vote would have
// adjusted.
type VoteRecipeFailure struct{ Err APIError }

// FavoriteRecipeFailure and UnfavoriteRecipeFailure report a rejected
// favorite toggle. Every slice the toggle would have touched records
// the error.
type FavoriteRecipeFailure struct{ Err APIError }
type UnfavoriteRecipeFailure struct{ Err APIError }

// SingleRecipe slice actions.

type FetchRecipeRequest struct{}
type FetchRecipeSuccess struct{ Recipe Recipe }
type FetchRecipeFailure struct{ Err APIError }

type PostReviewRequest struct{}
type PostReviewSuccess struct{ Review Review }
type PostReviewFailure struct{ Err APIError }

type FetchReviewsRequest struct{}
type FetchReviewsSuccess struct {
	Reviews      []Review
	ReviewsCount int
}
type FetchReviewsFailure struct{ Err APIError }

// AllReviewsFetched marks that every review the server holds is now in
// state. The dispatcher emits it immediately before the page success
// action that completes the set.
type AllReviewsFetched struct{}

// ClearReviews resets the recipe detail slice when navigating away, so
// a different recipe opened later never shows stale reviews.
type ClearReviews struct{}

type DeleteReviewSuccess struct{ ReviewID string }
type DeleteReviewFailure struct{ Err APIError }

// UserRecipes slice actions.

type FetchUserRecipesRequest struct{}
type FetchUserRecipesSuccess struct {
	Recipes []Recipe
	Count   int
}
type FetchUserRecipesFailure struct{ Err APIError }

type FetchUserFavoritesRequest struct{}
type FetchUserFavoritesSuccess struct {
	Favorites []Recipe
	Count     int
}
type FetchUserFavoritesFailure struct{ Err APIError }

type AddRecipeRequest struct{}
type AddRecipeSuccess struct{ Recipe Recipe }
type AddRecipeFailure struct{ Err APIError }

type EditRecipeRequest struct{}
type EditRecipeSuccess struct{ Recipe Recipe }
type EditRecipeFailure struct{ Err APIError }

type DeleteRecipeRequest struct{}
type DeleteRecipeSuccess struct{ RecipeID string }
type DeleteRecipeFailure struct{ Err APIError }

type UploadRecipeImageRequest struct{}
type UploadRecipeImageSuccess struct{ URL string }
type UploadRecipeImageFailure struct{ Err APIError }

// AdjustUserRecipesCount applies a relative delta to the added-recipes
// count of the profile being viewed.
type AdjustUserRecipesCount struct{ Delta int }

// AdjustUserFavoritesCount applies a relative delta to the favorites
// count of the profile being viewed.
type AdjustUserFavoritesCount struct{ Delta int }

// RemoveUserFavorite drops a recipe from the viewed profile's favorites
// after a successful unfavorite, without a full refetch.
type RemoveUserFavorite struct{ RecipeID string }

func (UserSignupRequest) isAction()         {}
func (UserSignupSuccess) isAction()         {}
func (UserSignupFailure) isAction()         {}
func (UserSigninRequest) isAction()         {}
func (UserSigninSuccess) isAction()         {}
func (UserSigninFailure) isAction()         {}
func (UserLogoutRequest) isAction()         {}
func (UserLogoutSuccess) isAction()         {}
func (FetchProfileRequest) isAction()       {}
func (FetchProfileSuccess) isAction()       {}
func (FetchProfileFailure) isAction()       {}
func (EditProfileRequest) isAction()        {}
func (EditProfileSuccess) isAction()        {}
func (EditProfileFailure) isAction()        {}
func (UploadUserImageRequest) isAction()    {}
func (UploadUserImageSuccess) isAction()    {}
func (UploadUserImageFailure) isAction()    {}
func (FetchRecipesRequest) isAction()       {}
func (FetchRecipesSuccess) isAction()       {}
func (FetchRecipesFailure) isAction()       {}
func (AdjustRecipeVotes) isAction()         {}
func (AdjustRecipeFavorites) isAction()     {}
func (VoteRecipeFailure) isAction()         {}
func (FavoriteRecipeFailure) isAction()     {}
func (UnfavoriteRecipeFailure) isAction()   {}
func (FetchRecipeRequest) isAction()        {}
func (FetchRecipeSuccess) isAction()        {}
func (FetchRecipeFailure) isAction()        {}
func (PostReviewRequest) isAction()         {}
func (PostReviewSuccess) isAction()         {}
func (PostReviewFailure) isAction()         {}
func (FetchReviewsRequest) isAction()       {}
func (FetchReviewsSuccess) isAction()       {}
func (FetchReviewsFailure) isAction()       {}
func (AllReviewsFetched) isAction()         {}
func (ClearReviews) isAction()              {}
func (DeleteReviewSuccess) isAction()       {}
func (DeleteReviewFailure) isAction()       {}
func (FetchUserRecipesRequest) isAction()   {}
func (FetchUserRecipesSuccess) isAction()   {}
func (FetchUserRecipesFailure) isAction()   {}
func (FetchUserFavoritesRequest) isAction() {}
func (FetchUserFavoritesSuccess) isAction() {}
func (FetchUserFavoritesFailure) isAction() {}
func (AddRecipeRequest) isAction()          {}
func (AddRecipeSuccess) isAction()          {}
func (AddRecipeFailure) isAction()          {}
func (EditRecipeRequest) isAction()         {}
func (EditRecipeSuccess) isAction()         {}
func (EditRecipeFailure) isAction()         {}
func (DeleteRecipeRequest) isAction()       {}
func (DeleteRecipeSuccess) isAction()       {}
func (DeleteRecipeFailure) isAction()       {}
func (UploadRecipeImageRequest) isAction()  {}
func (UploadRecipeImageSuccess) isAction()  {}
func (UploadRecipeImageFailure) isAction()  {}
func (AdjustUserRecipesCount) isAction()    {}
func (AdjustUserFavoritesCount) isAction()  {}
func (RemoveUserFavorite) isAction()        {}
