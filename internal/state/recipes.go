package state

// RecipesState is the catalog slice: the ordered recipe list as fetched
// plus the server-reported total.
type RecipesState struct {
	Items      []Recipe
	TotalCount int
	IsLoading  bool
	Error      APIError
}

// ReduceRecipes applies a to s and returns the next catalog slice.
func ReduceRecipes(s RecipesState, a Action) RecipesState {
	switch a := a.(type) {
	case FetchRecipesRequest:
		s.IsLoading = true
		return s
	case FetchRecipesSuccess:
		s.IsLoading = false
		s.Items = a.Recipes
		s.TotalCount = a.TotalCount
		s.Error = APIError{}
		return s
	case FetchRecipesFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case AdjustRecipeVotes:
		s.Items = adjustVotes(s.Items, a.RecipeID, a.Upvotes, a.Downvotes)
		return s
	case AdjustRecipeFavorites:
		s.Items = adjustFavorites(s.Items, a.RecipeID, a.Delta)
		return s
	case VoteRecipeFailure:
		s.Error = a.Err
		return s
	case FavoriteRecipeFailure:
		s.Error = a.Err
		return s
	case UnfavoriteRecipeFailure:
		s.Error = a.Err
		return s
	default:
		return s
	}
}

// adjustVotes returns a new slice with the matching recipe's counters
// moved by the given deltas. The input slice is left untouched.
func adjustVotes(items []Recipe, id string, up, down int) []Recipe {
	out := make([]Recipe, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Upvotes += up
			out[i].Downvotes += down
		}
	}
	return out
}

func adjustFavorites(items []Recipe, id string, delta int) []Recipe {
	out := make([]Recipe, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].FavoritesCount += delta
		}
	}
	return out
}
