package client

import (
	"context"
	"fmt"

	"github.com/tastebud-app/tastebud/internal/state"
)

// DefaultReviewsPageSize is the page size used when FetchReviews is
// called with a non-positive limit.
const DefaultReviewsPageSize = 5

// PostReview adds a review to the recipe currently in the detail slice.
func (c *Client) PostReview(ctx context.Context, recipeID, content string) state.APIError {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	c.store.Dispatch(state.PostReviewRequest{})

	env, apiErr := c.do(ctx, "POST", "/api/v1/recipes/"+recipeID+"/reviews", body, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.PostReviewFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		Review state.Review `json:"review"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.PostReviewFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.PostReviewSuccess{Review: data.Review})
	return state.APIError{}
}

// FetchReviews loads one page of reviews for the recipe. Limit defaults
// to DefaultReviewsPageSize and offset to 0 when non-positive.
//
// When the page completes the set, the all-fetched marker is dispatched
// immediately before the page's success action, so the reducer records
// the final page and the completion flag back to back with no render in
// between. The held-review count is read from the store at settlement
// time, not captured before the call: two pages may be in flight at
// once and settle out of order.
func (c *Client) FetchReviews(ctx context.Context, recipeID string, limit, offset int) state.APIError {
	if limit <= 0 {
		limit = DefaultReviewsPageSize
	}
	if offset < 0 {
		offset = 0
	}

	c.store.Dispatch(state.FetchReviewsRequest{})

	path := fmt.Sprintf("/api/v1/recipes/%s/reviews?limit=%d&offset=%d", recipeID, limit, offset)
	env, apiErr := c.do(ctx, "GET", path, nil, false)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FetchReviewsFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		Reviews      []state.Review `json:"reviews"`
		ReviewsCount int            `json:"reviews_count"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.FetchReviewsFailure{Err: apiErr})
		return apiErr
	}

	held := len(c.store.GetState().SingleRecipe.Reviews)
	if held+len(data.Reviews) == data.ReviewsCount {
		c.store.Dispatch(state.AllReviewsFetched{})
	}

	c.store.Dispatch(state.FetchReviewsSuccess{
		Reviews:      data.Reviews,
		ReviewsCount: data.ReviewsCount,
	})
	return state.APIError{}
}

// ClearReviews resets the review list when navigating away from a
// recipe detail view. No network call is made.
func (c *Client) ClearReviews() {
	c.store.Dispatch(state.ClearReviews{})
}

// DeleteReview removes the signed-in user's review. The server enforces
// authorship; deleting an already-removed review fails with not-found
// and removes nothing locally.
func (c *Client) DeleteReview(ctx context.Context, recipeID, reviewID string) state.APIError {
	_, apiErr := c.do(ctx, "DELETE", "/api/v1/recipes/"+recipeID+"/reviews/"+reviewID, nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.DeleteReviewFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.DeleteReviewSuccess{ReviewID: reviewID})
	return state.APIError{}
}
