package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/tastebud-app/tastebud/internal/models"
)

type reviewAuthor struct {
	FullName  string `json:"full_name"`
	UserImage string `json:"user_image"`
}

type reviewResponse struct {
	ID        uuid.UUID    `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Author    reviewAuthor `json:"author"`
}

func toReviewResponse(review *models.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID,
		Content:   review.Content,
		CreatedAt: review.CreatedAt,
		Author: reviewAuthor{
			FullName:  review.User.FullName,
			UserImage: review.User.UserImage,
		},
	}
}

func toReviewResponses(reviews []models.Review) []reviewResponse {
	out := make([]reviewResponse, len(reviews))
	for i := range reviews {
		out[i] = toReviewResponse(&reviews[i])
	}
	return out
}

type authenticatedUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
}

func toAuthenticatedUser(user *models.User, token string) authenticatedUser {
	return authenticatedUser{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Token:    token,
	}
}
