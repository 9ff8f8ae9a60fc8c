package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_DefaultShape(t *testing.T) {
	st := NewStore()
	s := st.GetState()

	assert.Equal(t, NewState(), s)
	assert.False(t, s.User.IsAuthenticated)
	assert.True(t, s.User.Error.IsZero())
	assert.Empty(t, s.Recipes.Items)
	assert.False(t, s.SingleRecipe.AllReviewsFetched)
}

func TestStore_DispatchTouchesOnlyOwningSlices(t *testing.T) {
	st := NewStore()
	st.Dispatch(FetchRecipesFailure{Err: APIError{Status: "Error", Message: "boom"}})

	s := st.GetState()
	assert.Equal(t, "boom", s.Recipes.Error.Message)
	assert.True(t, s.User.Error.IsZero(), "a failure on one slice must not corrupt another")
	assert.True(t, s.SingleRecipe.Error.IsZero())
	assert.True(t, s.UserRecipes.Error.IsZero())
}

func TestStore_CrossSliceDelta(t *testing.T) {
	st := NewStore()
	st.Dispatch(FetchRecipesSuccess{Recipes: []Recipe{{ID: "r1", Upvotes: 1}}, TotalCount: 1})
	st.Dispatch(FetchRecipeSuccess{Recipe: Recipe{ID: "r1", Upvotes: 1}})

	// One vote action lands in both the catalog and the detail view.
	st.Dispatch(AdjustRecipeVotes{RecipeID: "r1", Upvotes: 1})

	s := st.GetState()
	assert.Equal(t, 2, s.Recipes.Items[0].Upvotes)
	assert.Equal(t, 2, s.SingleRecipe.Recipe.Upvotes)
}

func TestStore_Subscribe(t *testing.T) {
	st := NewStore()

	var seen []State
	unsubscribe := st.Subscribe(func(s State) {
		seen = append(seen, s)
	})

	st.Dispatch(UserSigninRequest{})
	require.Len(t, seen, 1)
	assert.True(t, seen[0].User.IsLoading)

	unsubscribe()
	st.Dispatch(UserSignupRequest{})
	assert.Len(t, seen, 1, "no notifications after unsubscribe")
}

func TestStore_ConcurrentDispatchesSerialize(t *testing.T) {
	st := NewStore()
	st.Dispatch(FetchUserFavoritesSuccess{Favorites: []Recipe{}, Count: 0})

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			st.Dispatch(AdjustUserFavoritesCount{Delta: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, n, st.GetState().UserRecipes.FavoritesCount,
		"delta actions must never be lost under concurrent dispatch")
}

func TestStore_GetStateValueIsStable(t *testing.T) {
	st := NewStore()
	st.Dispatch(FetchRecipesSuccess{Recipes: []Recipe{{ID: "r1", Upvotes: 1}}, TotalCount: 1})

	before := st.GetState()
	st.Dispatch(AdjustRecipeVotes{RecipeID: "r1", Upvotes: 1})

	assert.Equal(t, 1, before.Recipes.Items[0].Upvotes,
		"a handed-out state value must not change retroactively")
	assert.Equal(t, 2, st.GetState().Recipes.Items[0].Upvotes)
}
