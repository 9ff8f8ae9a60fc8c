package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceRecipes_UnknownActionPassthrough(t *testing.T) {
	s := RecipesState{Items: []Recipe{{ID: "r1"}}, TotalCount: 1}
	got := ReduceRecipes(s, UserSigninRequest{})
	assert.Equal(t, s, got)
}

func TestReduceRecipes_FetchCycle(t *testing.T) {
	recipes := []Recipe{
		{ID: "r1", Title: "Jollof Rice", Upvotes: 4},
		{ID: "r2", Title: "Egusi Soup", Upvotes: 2},
	}

	s := ReduceRecipes(RecipesState{}, FetchRecipesRequest{})
	assert.True(t, s.IsLoading)
	assert.Empty(t, s.Items, "request must not touch data")

	s = ReduceRecipes(s, FetchRecipesSuccess{Recipes: recipes, TotalCount: 12})
	assert.False(t, s.IsLoading)
	assert.Equal(t, recipes, s.Items)
	assert.Equal(t, 12, s.TotalCount)
	assert.True(t, s.Error.IsZero())
}

func TestReduceRecipes_FailureLeavesItemsUntouched(t *testing.T) {
	s := RecipesState{Items: []Recipe{{ID: "r1"}}, TotalCount: 1, IsLoading: true}
	err := APIError{Status: "Error", Message: "boom"}
	got := ReduceRecipes(s, FetchRecipesFailure{Err: err})

	assert.False(t, got.IsLoading)
	assert.Equal(t, err, got.Error)
	assert.Equal(t, s.Items, got.Items)
	assert.Equal(t, s.TotalCount, got.TotalCount)
}

func TestReduceRecipes_VoteDeltas(t *testing.T) {
	s := RecipesState{Items: []Recipe{
		{ID: "r1", Upvotes: 4, Downvotes: 1},
		{ID: "r2", Upvotes: 9, Downvotes: 0},
	}}

	got := ReduceRecipes(s, AdjustRecipeVotes{RecipeID: "r1", Upvotes: 1, Downvotes: -1})
	assert.Equal(t, 5, got.Items[0].Upvotes)
	assert.Equal(t, 0, got.Items[0].Downvotes)
	assert.Equal(t, 9, got.Items[1].Upvotes, "other recipes stay put")

	// Input slice must not be mutated.
	assert.Equal(t, 4, s.Items[0].Upvotes)
}

func TestReduceRecipes_VoteAndFavoriteFailures(t *testing.T) {
	s := RecipesState{Items: []Recipe{{ID: "r1", Upvotes: 4, FavoritesCount: 2}}}
	err := APIError{Status: "Fail", Message: "Recipe not found"}

	got := ReduceRecipes(s, VoteRecipeFailure{Err: err})
	assert.Equal(t, err, got.Error)
	assert.Equal(t, s.Items, got.Items, "a rejected vote moves no counters")

	got = ReduceRecipes(s, FavoriteRecipeFailure{Err: err})
	assert.Equal(t, err, got.Error)
	assert.Equal(t, s.Items, got.Items)

	got = ReduceRecipes(s, UnfavoriteRecipeFailure{Err: err})
	assert.Equal(t, err, got.Error)
	assert.Equal(t, s.Items, got.Items)
}

func TestReduceRecipes_FavoritesDelta(t *testing.T) {
	s := RecipesState{Items: []Recipe{{ID: "r1", FavoritesCount: 2}}}

	got := ReduceRecipes(s, AdjustRecipeFavorites{RecipeID: "r1", Delta: 1})
	assert.Equal(t, 3, got.Items[0].FavoritesCount)

	got = ReduceRecipes(got, AdjustRecipeFavorites{RecipeID: "r1", Delta: -1})
	assert.Equal(t, 2, got.Items[0].FavoritesCount)
}
