package client

import (
	"context"
	"io"
	"log"

	"github.com/tastebud-app/tastebud/internal/state"
)

// SignupForm is the sign-up request payload.
type SignupForm struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninForm is the sign-in request payload.
type SigninForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileForm is the profile-edit request payload.
type ProfileForm struct {
	FullName  string `json:"full_name"`
	About     string `json:"about"`
	UserImage string `json:"user_image"`
}

// SignUp registers a new account. The issued token is persisted before
// the success action is dispatched, so any UI transition triggered by
// the state change already sees valid credentials.
func (c *Client) SignUp(ctx context.Context, form SignupForm) state.APIError {
	c.store.Dispatch(state.UserSignupRequest{})

	env, apiErr := c.do(ctx, "POST", "/api/v1/users/signup", form, false)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.UserSignupFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		User state.AuthenticatedUser `json:"user"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.UserSignupFailure{Err: apiErr})
		return apiErr
	}

	if err := c.creds.SetToken(data.User.Token); err != nil {
		log.Printf("signup: persisting token: %v", err)
	}
	c.store.Dispatch(state.UserSignupSuccess{User: data.User})
	return state.APIError{}
}

// SignIn authenticates an existing account; token persistence precedes
// the success dispatch, as with SignUp.
func (c *Client) SignIn(ctx context.Context, form SigninForm) state.APIError {
	c.store.Dispatch(state.UserSigninRequest{})

	env, apiErr := c.do(ctx, "POST", "/api/v1/users/signin", form, false)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.UserSigninFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		User state.AuthenticatedUser `json:"user"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.UserSigninFailure{Err: apiErr})
		return apiErr
	}

	if err := c.creds.SetToken(data.User.Token); err != nil {
		log.Printf("signin: persisting token: %v", err)
	}
	c.store.Dispatch(state.UserSigninSuccess{User: data.User})
	return state.APIError{}
}

// Logout clears the persisted token and resets the user slice. There is
// no server call; the session lives entirely in the token.
func (c *Client) Logout() state.APIError {
	c.store.Dispatch(state.UserLogoutRequest{})
	if err := c.creds.ClearToken(); err != nil {
		log.Printf("logout: clearing token: %v", err)
	}
	c.store.Dispatch(state.UserLogoutSuccess{})
	return state.APIError{}
}

// FetchProfile loads the public profile of the given user.
func (c *Client) FetchProfile(ctx context.Context, userID string) state.APIError {
	c.store.Dispatch(state.FetchProfileRequest{})

	env, apiErr := c.do(ctx, "GET", "/api/v1/users/"+userID, nil, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.FetchProfileFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		User state.UserProfile `json:"user"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.FetchProfileFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.FetchProfileSuccess{Profile: data.User})
	return state.APIError{}
}

// EditProfile updates the signed-in user's profile. The target user id
// comes from the held token, not from state, so the call stays correct
// even while a different profile is being viewed.
func (c *Client) EditProfile(ctx context.Context, form ProfileForm) state.APIError {
	claims := c.creds.DecodeToken()
	if claims == nil {
		apiErr := state.APIError{Status: "Fail", Message: "not signed in"}
		c.store.Dispatch(state.EditProfileFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.EditProfileRequest{})

	env, apiErr := c.do(ctx, "PUT", "/api/v1/users/"+claims.UserID.String(), form, true)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.EditProfileFailure{Err: apiErr})
		return apiErr
	}

	var data struct {
		User state.UserProfile `json:"user"`
	}
	if err := env.decode(&data); err != nil {
		apiErr = state.APIError{Status: "Error", Message: err.Error()}
		c.store.Dispatch(state.EditProfileFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.EditProfileSuccess{Profile: data.User})
	return state.APIError{}
}

// UploadUserImage stores a profile picture and records its public URL
// in the user slice. The profile itself is updated by a following
// EditProfile carrying the URL.
func (c *Client) UploadUserImage(ctx context.Context, filename string, r io.Reader) state.APIError {
	c.store.Dispatch(state.UploadUserImageRequest{})

	url, apiErr := c.uploadImage(ctx, filename, r)
	if !apiErr.IsZero() {
		c.store.Dispatch(state.UploadUserImageFailure{Err: apiErr})
		return apiErr
	}

	c.store.Dispatch(state.UploadUserImageSuccess{URL: url})
	return state.APIError{}
}
