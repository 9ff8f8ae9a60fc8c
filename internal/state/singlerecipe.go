package state

// SingleRecipeState is the recipe-detail slice. It is replaced wholesale
// on every detail fetch; reviews arrive incrementally in pages.
//
// ReviewsCount is the server-reported total and is authoritative.
// AllReviewsFetched is set by a dedicated marker action rather than
// recomputed on every read.
type SingleRecipeState struct {
	Recipe            Recipe
	Reviews           []Review
	ReviewsCount      int
	AllReviewsFetched bool
	IsLoading         bool
	IsFetchingReviews bool
	IsPostingReview   bool
	Error             APIError
}

// ReduceSingleRecipe applies a to s and returns the next detail slice.
func ReduceSingleRecipe(s SingleRecipeState, a Action) SingleRecipeState {
	switch a := a.(type) {
	case FetchRecipeRequest:
		s.IsLoading = true
		return s
	case FetchRecipeSuccess:
		// A fresh detail fetch replaces the whole slice so reviews from
		// a previously viewed recipe can never bleed through.
		return SingleRecipeState{Recipe: a.Recipe}
	case FetchRecipeFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case PostReviewRequest:
		s.IsPostingReview = true
		return s
	case PostReviewSuccess:
		s.IsPostingReview = false
		s.Reviews = prependReview(s.Reviews, a.Review)
		s.ReviewsCount++
		s.Error = APIError{}
		return s
	case PostReviewFailure:
		s.IsPostingReview = false
		s.Error = a.Err
		return s
	case FetchReviewsRequest:
		s.IsFetchingReviews = true
		return s
	case FetchReviewsSuccess:
		s.IsFetchingReviews = false
		s.Reviews = appendReviews(s.Reviews, a.Reviews)
		s.ReviewsCount = a.ReviewsCount
		s.Error = APIError{}
		return s
	case FetchReviewsFailure:
		s.IsFetchingReviews = false
		s.Error = a.Err
		return s
	case AllReviewsFetched:
		s.AllReviewsFetched = true
		return s
	case ClearReviews:
		s.Reviews = nil
		s.ReviewsCount = 0
		s.AllReviewsFetched = false
		return s
	case DeleteReviewSuccess:
		reviews := make([]Review, 0, len(s.Reviews))
		removed := false
		for _, r := range s.Reviews {
			if r.ID == a.ReviewID {
				removed = true
				continue
			}
			reviews = append(reviews, r)
		}
		s.Reviews = reviews
		if removed {
			s.ReviewsCount--
		}
		s.Error = APIError{}
		return s
	case DeleteReviewFailure:
		s.Error = a.Err
		return s
	case AdjustRecipeVotes:
		if s.Recipe.ID == a.RecipeID {
			s.Recipe.Upvotes += a.Upvotes
			s.Recipe.Downvotes += a.Downvotes
		}
		return s
	case AdjustRecipeFavorites:
		if s.Recipe.ID == a.RecipeID {
			s.Recipe.FavoritesCount += a.Delta
		}
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

func prependReview(reviews []Review, r Review) []Review {
	out := make([]Review, 0, len(reviews)+1)
	out = append(out, r)
	return append(out, reviews...)
}

func appendReviews(reviews, page []Review) []Review {
	out := make([]Review, 0, len(reviews)+len(page))
	out = append(out, reviews...)
	return append(out, page...)
}
