package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewsNamed(ids ...string) []Review {
	out := make([]Review, 0, len(ids))
	for _, id := range ids {
		out = append(out, Review{ID: id, Content: "review " + id})
	}
	return out
}

func TestReduceSingleRecipe_UnknownActionPassthrough(t *testing.T) {
	s := SingleRecipeState{Recipe: Recipe{ID: "r1"}, ReviewsCount: 3}
	got := ReduceSingleRecipe(s, AddRecipeRequest{})
	assert.Equal(t, s, got)
}

func TestReduceSingleRecipe_FetchReplacesWholesale(t *testing.T) {
	s := SingleRecipeState{
		Recipe:            Recipe{ID: "r1"},
		Reviews:           reviewsNamed("v1", "v2"),
		ReviewsCount:      2,
		AllReviewsFetched: true,
	}
	got := ReduceSingleRecipe(s, FetchRecipeSuccess{Recipe: Recipe{ID: "r2", Title: "Moin Moin"}})

	assert.Equal(t, "r2", got.Recipe.ID)
	assert.Empty(t, got.Reviews, "reviews of the previous recipe must not survive")
	assert.Zero(t, got.ReviewsCount)
	assert.False(t, got.AllReviewsFetched)
}

func TestReduceSingleRecipe_ReviewPagination(t *testing.T) {
	// Server holds 7 reviews; the client fetches a page of 5 then 2.
	s := SingleRecipeState{Recipe: Recipe{ID: "r1"}}

	s = ReduceSingleRecipe(s, FetchReviewsRequest{})
	assert.True(t, s.IsFetchingReviews)

	s = ReduceSingleRecipe(s, FetchReviewsSuccess{
		Reviews:      reviewsNamed("v1", "v2", "v3", "v4", "v5"),
		ReviewsCount: 7,
	})
	require.Len(t, s.Reviews, 5)
	assert.Equal(t, 7, s.ReviewsCount)
	assert.False(t, s.AllReviewsFetched, "first page must not complete the set")

	s = ReduceSingleRecipe(s, AllReviewsFetched{})
	s = ReduceSingleRecipe(s, FetchReviewsSuccess{
		Reviews:      reviewsNamed("v6", "v7"),
		ReviewsCount: 7,
	})
	require.Len(t, s.Reviews, 7)
	assert.True(t, s.AllReviewsFetched)
	assert.Equal(t, "v1", s.Reviews[0].ID, "pages append in fetch order")
	assert.Equal(t, "v7", s.Reviews[6].ID)
}

func TestReduceSingleRecipe_ClearReviews(t *testing.T) {
	s := SingleRecipeState{
		Recipe:            Recipe{ID: "r1"},
		Reviews:           reviewsNamed("v1", "v2"),
		ReviewsCount:      2,
		AllReviewsFetched: true,
	}
	got := ReduceSingleRecipe(s, ClearReviews{})

	assert.Empty(t, got.Reviews)
	assert.Zero(t, got.ReviewsCount)
	assert.False(t, got.AllReviewsFetched)
	assert.Equal(t, s.Recipe, got.Recipe, "the recipe itself stays")
}

func TestReduceSingleRecipe_PostReviewPrepends(t *testing.T) {
	s := SingleRecipeState{Reviews: reviewsNamed("v1"), ReviewsCount: 1}
	got := ReduceSingleRecipe(s, PostReviewSuccess{Review: Review{ID: "v2", Content: "Tasty"}})

	require.Len(t, got.Reviews, 2)
	assert.Equal(t, "v2", got.Reviews[0].ID, "newest review shows first")
	assert.Equal(t, 2, got.ReviewsCount)
}

func TestReduceSingleRecipe_DeleteReview(t *testing.T) {
	s := SingleRecipeState{Reviews: reviewsNamed("v1", "v2", "v3"), ReviewsCount: 3}

	got := ReduceSingleRecipe(s, DeleteReviewSuccess{ReviewID: "v2"})
	require.Len(t, got.Reviews, 2)
	assert.Equal(t, "v1", got.Reviews[0].ID)
	assert.Equal(t, "v3", got.Reviews[1].ID)
	assert.Equal(t, 2, got.ReviewsCount)

	// Deleting an id that is no longer held must not drift the count.
	again := ReduceSingleRecipe(got, DeleteReviewSuccess{ReviewID: "v2"})
	assert.Equal(t, 2, again.ReviewsCount)
}

func TestReduceSingleRecipe_DeleteReviewFailureLeavesReviews(t *testing.T) {
	s := SingleRecipeState{Reviews: reviewsNamed("v1", "v2"), ReviewsCount: 2}
	err := APIError{Status: "Fail", Message: "Review not found"}
	got := ReduceSingleRecipe(s, DeleteReviewFailure{Err: err})

	assert.Equal(t, s.Reviews, got.Reviews)
	assert.Equal(t, 2, got.ReviewsCount)
	assert.Equal(t, err, got.Error)
}

func TestReduceSingleRecipe_VoteAndFavoriteDeltas(t *testing.T) {
	s := SingleRecipeState{Recipe: Recipe{ID: "r1", Upvotes: 3, FavoritesCount: 2}}

	got := ReduceSingleRecipe(s, AdjustRecipeVotes{RecipeID: "r1", Upvotes: 1})
	assert.Equal(t, 4, got.Recipe.Upvotes)

	got = ReduceSingleRecipe(got, AdjustRecipeFavorites{RecipeID: "r1", Delta: 1})
	assert.Equal(t, 3, got.Recipe.FavoritesCount)

	// A delta for a different recipe is ignored.
	got = ReduceSingleRecipe(got, AdjustRecipeVotes{RecipeID: "r9", Upvotes: 5})
	assert.Equal(t, 4, got.Recipe.Upvotes)
}

func TestReduceSingleRecipe_VoteAndFavoriteFailures(t *testing.T) {
	s := SingleRecipeState{Recipe: Recipe{ID: "r1", Upvotes: 3, FavoritesCount: 2}}
	err := APIError{Status: "Fail", Message: "Favorite already exists"}

	got := ReduceSingleRecipe(s, FavoriteRecipeFailure{Err: err})
	assert.Equal(t, err, got.Error)
	assert.Equal(t, s.Recipe, got.Recipe, "a rejected toggle moves no counters")

	got = ReduceSingleRecipe(s, UnfavoriteRecipeFailure{Err: err})
	assert.Equal(t, err, got.Error)
	assert.Equal(t, s.Recipe, got.Recipe)

	got = ReduceSingleRecipe(s, VoteRecipeFailure{Err: APIError{Message: "boom"}})
	assert.Equal(t, "boom", got.Error.Message)
	assert.Equal(t, s.Recipe, got.Recipe)
}
