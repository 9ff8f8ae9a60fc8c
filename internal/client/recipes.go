package client

import (
	"context"
	"fmt"
	"io"

	"github.com/tastebud-app/tastebud/internal/state"
)

// RecipeForm is the add/edit recipe request payload.
type RecipeForm struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PreparationTime int    `json:"preparation_time"`
	Ingredients     string `json:"ingredients"`
	Directions      string `json:"directions"`
	RecipeImage     string `json:"recipe_image"`
}

type recipeListData struct {
	Recipes    []state.Recipe `json:"recipes"`
	TotalCount int            `json:"total_count"`
}

// FetchRecipes loads the recipe catalog.
func (c *Client) FetchRecipes(ctx context.Context) state.APIError {
	return c.fetchRecipeList(ctx, "/api/v1/recipes")
}

// FetchPopularRecipes loads the catalog sorted by upvotes, most first.
func (c *Client) FetchPopularRecipes(ctx context.Context, limit int) state.APIError {
	path := fmt.Sprintf("/api/v1/recipes?sort=upvotes&order=desc&limit=%d", limit)
	return c.fetchRecipeList(ctx, path)
}

func (c *Client) fetchRecipeList(ctx context.Context, path string) state.APIError {
	c.store.Dispatch(state.FetchRecipesRequest{})

	env, apiErr := c.do(ctx, "GET", path, nil, false)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FetchRecipesFailure{Err: apiErr})
		return apiErr
	}

	var data recipeListData
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.FetchRecipesFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.FetchRecipesSuccess{Recipes: data.Recipes, TotalCount: data.TotalCount})
	return state.APIError{}
}

// FetchRecipe loads one recipe's detail view. The detail slice is
// replaced wholesale; reviews are fetched separately in pages.
func (c *Client) FetchRecipe(ctx context.Context, recipeID string) state.APIError {
	c.store.Dispatch(state.FetchRecipeRequest{})

	env, apiErr := c.do(ctx, "GET", "/api/v1/recipes/"+recipeID, nil, false)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FetchRecipeFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		Recipe state.Recipe `json:"recipe"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.FetchRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.FetchRecipeSuccess{Recipe: data.Recipe})
	return state.APIError{}
}

// AddRecipe creates a recipe owned by the signed-in user. On success the
// added-recipes count is moved by a delta action mirroring the server's
// confirmation, never recomputed from the list.
func (c *Client) AddRecipe(ctx context.Context, form RecipeForm) state.APIError {
	c.store.Dispatch(state.AddRecipeRequest{})

	env, apiErr := c.do(ctx, "POST", "/api/v1/recipes", form, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.AddRecipeFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		Recipe state.Recipe `json:"recipe"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.AddRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.AddRecipeSuccess{Recipe: data.Recipe})
	c.store.Dispatch(state.AdjustUserRecipesCount{Delta: 1})
	return state.APIError{}
}

// EditRecipe updates a recipe owned by the signed-in user.
func (c *Client) EditRecipe(ctx context.Context, recipeID string, form RecipeForm) state.APIError {
	c.store.Dispatch(state.EditRecipeRequest{})

	env, apiErr := c.do(ctx, "PUT", "/api/v1/recipes/"+recipeID, form, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.EditRecipeFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		Recipe state.Recipe `json:"recipe"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.EditRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.EditRecipeSuccess{Recipe: data.Recipe})
	return state.APIError{}
}

// DeleteRecipe removes a recipe owned by the signed-in user. The success
// action carries the id so the reducer filters it out without a refetch;
// on failure nothing is removed and the error lands in the slice.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) state.APIError {
	c.store.Dispatch(state.DeleteRecipeRequest{})

	_, apiErr := c.do(ctx, "DELETE", "/api/v1/recipes/"+recipeID, nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.DeleteRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.DeleteRecipeSuccess{RecipeID: recipeID})
	return state.APIError{}
}

// Upvote records an upvote for the recipe; Downvote a downvote. The
// server reports the deltas it actually applied (voting twice toggles,
// switching sides moves both counters) and those deltas are dispatched
// as-is, so a concurrent catalog fetch cannot clobber the adjustment.
func (c *Client) Upvote(ctx context.Context, recipeID string) state.APIError {
	return c.vote(ctx, recipeID, "up")
}

func (c *Client) Downvote(ctx context.Context, recipeID string) state.APIError {
	return c.vote(ctx, recipeID, "down")
}

func (c *Client) vote(ctx context.Context, recipeID, kind string) state.APIError {
	body := struct {
		Kind string `json:"kind"`
	}{Kind: kind}

	env, apiErr := c.do(ctx, "POST", "/api/v1/recipes/"+recipeID+"/votes", body, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.VoteRecipeFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		UpvoteDelta   int `json:"upvote_delta"`
		DownvoteDelta int `json:"downvote_delta"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.VoteRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.AdjustRecipeVotes{
		RecipeID:  recipeID,
		Upvotes:   data.UpvoteDelta,
		Downvotes: data.DownvoteDelta,
	})
	return state.APIError{}
}

// Favorite marks the recipe as a favorite of the signed-in user. A
// duplicate favorite is a conflict reported by the server; no local
// count moves in that case, and the error lands in the slices the
// counts live in.
func (c *Client) Favorite(ctx context.Context, recipeID string) state.APIError {
	_, apiErr := c.do(ctx, "POST", "/api/v1/recipes/"+recipeID+"/favorites", nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FavoriteRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.AdjustRecipeFavorites{RecipeID: recipeID, Delta: 1})
	c.store.Dispatch(state.AdjustUserFavoritesCount{Delta: 1})
	return state.APIError{}
}

// Unfavorite removes the recipe from the signed-in user's favorites and
// drops it from the viewed profile's favorites list.
func (c *Client) Unfavorite(ctx context.Context, recipeID string) state.APIError {
	_, apiErr := c.do(ctx, "DELETE", "/api/v1/recipes/"+recipeID+"/favorites", nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.UnfavoriteRecipeFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.AdjustRecipeFavorites{RecipeID: recipeID, Delta: -1})
	c.store.Dispatch(state.RemoveUserFavorite{RecipeID: recipeID})
	return state.APIError{}
}

// FetchUserRecipes loads the recipes added by the given user into the
// profile slice.
func (c *Client) FetchUserRecipes(ctx context.Context, userID string) state.APIError {
	c.store.Dispatch(state.FetchUserRecipesRequest{})

	env, apiErr := c.do(ctx, "GET", "/api/v1/users/"+userID+"/recipes", nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FetchUserRecipesFailure{Err: apiErr})
		return apiErr
	}

	var data recipeListData
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.FetchUserRecipesFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.FetchUserRecipesSuccess{Recipes: data.Recipes, Count: data.TotalCount})
	return state.APIError{}
}

// FetchUserFavorites loads the favorites of the given user into the
// profile slice.
func (c *Client) FetchUserFavorites(ctx context.Context, userID string) state.APIError {
	c.store.Dispatch(state.FetchUserFavoritesRequest{})

	env, apiErr := c.do(ctx, "GET", "/api/v1/users/"+userID+"/favorites", nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FetchUserFavoritesFailure{Err: apiErr})
		return apiErr
	}

	var data recipeListData
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.FetchUserFavoritesFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.FetchUserFavoritesSuccess{Favorites: data.Recipes, Count: data.TotalCount})
	return state.APIError{}
}

// UploadRecipeImage stores a recipe picture and records its public URL
// in the profile slice for the add/edit form to pick up.
func (c *Client) UploadRecipeImage(ctx context.Context, filename string, r io.Reader) state.APIError {
	c.store.Dispatch(state.UploadRecipeImageRequest{})

	url, apiErr := c.uploadImage(ctx, filename, r)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.UploadRecipeImageFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.UploadRecipeImageSuccess{URL: url})
	return state.APIError{}
}
