package client

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-app/tastebud/internal/state"
)

// reviewsHandler serves total reviews in limit/offset pages, the way the
// real endpoint does.
func reviewsHandler(total int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if limit <= 0 {
			limit = DefaultReviewsPageSize
		}

		page := []map[string]any{}
		for i := offset; i < total && i < offset+limit; i++ {
			page = append(page, map[string]any{
				"id":      "v" + strconv.Itoa(i+1),
				"content": "review " + strconv.Itoa(i+1),
				"author":  map[string]any{"full_name": "Ada Lovelace"},
			})
		}
		writeEnvelope(w, http.StatusOK, "Reviews retrieved", map[string]any{
			"reviews":       page,
			"reviews_count": total,
		})
	}
}

func TestFetchReviews_PaginationMarksCompletionOnlyOnFinalPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/recipes/r1/reviews", reviewsHandler(7))

	c, store, _ := newTestClient(t, mux)
	store.Dispatch(state.FetchRecipeSuccess{Recipe: state.Recipe{ID: "r1"}})

	apiErr := c.FetchReviews(context.Background(), "r1", 5, 0)
	require.True(t, apiErr.IsZero())

	s := store.GetState().SingleRecipe
	require.Len(t, s.Reviews, 5)
	assert.Equal(t, 7, s.ReviewsCount)
	assert.False(t, s.AllReviewsFetched, "5 of 7 held: not complete")

	apiErr = c.FetchReviews(context.Background(), "r1", 5, 5)
	require.True(t, apiErr.IsZero())

	s = store.GetState().SingleRecipe
	require.Len(t, s.Reviews, 7)
	assert.True(t, s.AllReviewsFetched, "7 of 7 held: complete")
	assert.Equal(t, "v1", s.Reviews[0].ID)
	assert.Equal(t, "v7", s.Reviews[6].ID)
}

func TestFetchReviews_MarkerPrecedesFinalSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/recipes/r1/reviews", reviewsHandler(2))

	c, store, _ := newTestClient(t, mux)
	store.Dispatch(state.FetchRecipeSuccess{Recipe: state.Recipe{ID: "r1"}})

	// Record the flag as observed when the final page lands: the marker
	// must already have been applied.
	var flagWhenPageLanded *bool
	unsubscribe := store.Subscribe(func(s state.State) {
		if len(s.SingleRecipe.Reviews) == 2 && flagWhenPageLanded == nil {
			v := s.SingleRecipe.AllReviewsFetched
			flagWhenPageLanded = &v
		}
	})
	defer unsubscribe()

	apiErr := c.FetchReviews(context.Background(), "r1", 5, 0)
	require.True(t, apiErr.IsZero())

	require.NotNil(t, flagWhenPageLanded)
	assert.True(t, *flagWhenPageLanded,
		"the completion flag must be set atomically with the final page")
}

func TestFetchReviews_DefaultsLimitAndOffset(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/recipes/r1/reviews", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		reviewsHandler(0)(w, r)
	})

	c, _, _ := newTestClient(t, mux)
	apiErr := c.FetchReviews(context.Background(), "r1", 0, -3)
	require.True(t, apiErr.IsZero())
	assert.Equal(t, "limit=5&offset=0", gotQuery)
}

func TestPostReview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/recipes/r1/reviews", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, "Review created", map[string]any{
			"review": map[string]any{
				"id":      "v9",
				"content": "Nice recipe",
				"author":  map[string]any{"full_name": "Ada Lovelace"},
			},
		})
	})

	c, store, creds := newTestClient(t, mux)
	require.NoError(t, creds.SetToken("held-token"))
	store.Dispatch(state.FetchRecipeSuccess{Recipe: state.Recipe{ID: "r1"}})

	apiErr := c.PostReview(context.Background(), "r1", "Nice recipe")
	require.True(t, apiErr.IsZero())

	s := store.GetState().SingleRecipe
	require.Len(t, s.Reviews, 1)
	assert.Equal(t, "v9", s.Reviews[0].ID)
	assert.Equal(t, 1, s.ReviewsCount)
}

func TestDeleteReview_NotFoundLeavesStateIntact(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v1/recipes/r1/reviews/v1", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "Review not found")
	})

	c, store, _ := newTestClient(t, mux)
	store.Dispatch(state.FetchRecipeSuccess{Recipe: state.Recipe{ID: "r1"}})
	store.Dispatch(state.FetchReviewsSuccess{
		Reviews:      []state.Review{{ID: "v1"}, {ID: "v2"}},
		ReviewsCount: 2,
	})

	apiErr := c.DeleteReview(context.Background(), "r1", "v1")
	assert.Equal(t, "Review not found", apiErr.Message)

	s := store.GetState().SingleRecipe
	assert.Len(t, s.Reviews, 2)
	assert.Equal(t, 2, s.ReviewsCount)
	assert.Equal(t, "Review not found", s.Error.Message)
}

func TestClearReviews(t *testing.T) {
	c, store, _ := newTestClient(t, http.NewServeMux())
	store.Dispatch(state.FetchRecipeSuccess{Recipe: state.Recipe{ID: "r1"}})
	store.Dispatch(state.FetchReviewsSuccess{
		Reviews:      []state.Review{{ID: "v1"}},
		ReviewsCount: 1,
	})

	c.ClearReviews()

	s := store.GetState().SingleRecipe
	assert.Empty(t, s.Reviews)
	assert.Zero(t, s.ReviewsCount)
}
