package state

// UserRecipesState is the profile slice: recipes added and favorited by
// whichever user's profile is being viewed. Fetch and mutation concerns
// carry their own loading and error fields so a failed favorites fetch
// cannot mask a recipe edit in flight.
type UserRecipesState struct {
	AddedRecipes      []Recipe
	AddedRecipesCount int
	Favorites         []Recipe
	FavoritesCount    int

	IsFetchingRecipes   bool
	RecipesError        APIError
	IsFetchingFavorites bool
	FavoritesError      APIError

	// Add, edit and delete share one in-flight flag and error field.
	IsLoading bool
	Error     APIError

	ImageUploading bool
	ImageUploaded  bool
	ImageURL       string
}

// ReduceUserRecipes applies a to s and returns the next profile slice.
func ReduceUserRecipes(s UserRecipesState, a Action) UserRecipesState {
	switch a := a.(type) {
	case FetchUserRecipesRequest:
		s.IsFetchingRecipes = true
		return s
	case FetchUserRecipesSuccess:
		s.IsFetchingRecipes = false
		s.AddedRecipes = a.Recipes
		s.AddedRecipesCount = a.Count
		s.RecipesError = APIError{}
		return s
	case FetchUserRecipesFailure:
		s.IsFetchingRecipes = false
		s.RecipesError = a.Err
		return s
	case FetchUserFavoritesRequest:
		s.IsFetchingFavorites = true
		return s
	case FetchUserFavoritesSuccess:
		s.IsFetchingFavorites = false
		s.Favorites = a.Favorites
		s.FavoritesCount = a.Count
		s.FavoritesError = APIError{}
		return s
	case FetchUserFavoritesFailure:
		s.IsFetchingFavorites = false
		s.FavoritesError = a.Err
		return s
	case AddRecipeRequest, EditRecipeRequest, DeleteRecipeRequest:
		s.IsLoading = true
		return s
	case AddRecipeSuccess:
		s.IsLoading = false
		s.ImageUploaded = false
		s.AddedRecipes = appendRecipe(s.AddedRecipes, a.Recipe)
		s.Error = APIError{}
		return s
	case EditRecipeSuccess:
		s.IsLoading = false
		s.ImageUploaded = false
		s.AddedRecipes = replaceRecipe(s.AddedRecipes, a.Recipe)
		s.Error = APIError{}
		return s
	case DeleteRecipeSuccess:
		s.IsLoading = false
		recipes := make([]Recipe, 0, len(s.AddedRecipes))
		removed := false
		for _, r := range s.AddedRecipes {
			if r.ID == a.RecipeID {
				removed = true
				continue
			}
			recipes = append(recipes, r)
		}
		s.AddedRecipes = recipes
		if removed {
			s.AddedRecipesCount--
		}
		s.Error = APIError{}
		return s
	case AddRecipeFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case EditRecipeFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case DeleteRecipeFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case UploadRecipeImageRequest:
		s.ImageUploading = true
		s.ImageUploaded = false
		return s
	case UploadRecipeImageSuccess:
		s.ImageUploading = false
		s.ImageUploaded = true
		s.ImageURL = a.URL
		s.Error = APIError{}
		return s
	case UploadRecipeImageFailure:
		s.ImageUploading = false
		s.ImageUploaded = false
		s.Error = a.Err
		return s
	case FavoriteRecipeFailure:
		s.Error = a.Err
		return s
	case UnfavoriteRecipeFailure:
		s.Error = a.Err
		return s
	case AdjustUserRecipesCount:
		s.AddedRecipesCount += a.Delta
		return s
	case AdjustUserFavoritesCount:
		s.FavoritesCount += a.Delta
		return s
	case RemoveUserFavorite:
		favorites := make([]Recipe, 0, len(s.Favorites))
		removed := false
		for _, r := range s.Favorites {
			if r.ID == a.RecipeID {
				removed = true
				continue
			}
			favorites = append(favorites, r)
		}
		s.Favorites = favorites
		if removed {
			s.FavoritesCount--
		}
		return s
	default:
		return s
	}
}

func appendRecipe(recipes []Recipe, r Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes)+1)
	out = append(out, recipes...)
	return append(out, r)
}

func replaceRecipe(recipes []Recipe, r Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	copy(out, recipes)
	for i := range out {
		if out[i].ID == r.ID {
			out[i] = r
		}
	}
	return out
}
