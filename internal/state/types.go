package state

import "time"

// Recipe is the client-side view of a recipe as returned by the API.
type Recipe struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PreparationTime int    `json:"preparation_time"`
	Ingredients     string `json:"ingredients"`
	Directions      string `json:"directions"`
	RecipeImage     string `json:"recipe_image"`
	Upvotes         int    `json:"upvotes"`
	Downvotes       int    `json:"downvotes"`
	Views           int    `json:"views"`
	FavoritesCount  int    `json:"favorites_count"`
}

// ReviewAuthor carries the display fields of a review's author.
type ReviewAuthor struct {
	FullName  string `json:"full_name"`
	UserImage string `json:"user_image"`
}

// Review is immutable once created; it can only be removed, never edited.
type Review struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Author    ReviewAuthor `json:"author"`
}

// UserProfile is the public profile of a user.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	About     string    `json:"about"`
	UserImage string    `json:"user_image"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthenticatedUser is the sign-in/sign-up success payload. The token is
// consumed by the dispatcher for persistence and never stored in state.
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
