package state

// UserState is the authenticated-user slice. The anonymous state is a
// valid value of this type, never a nil; logout returns the slice to it.
type UserState struct {
	ID              string
	Username        string
	FullName        string
	Email           string
	IsAuthenticated bool
	IsLoading       bool
	Profile         UserProfile
	Error           APIError
}

// ReduceUser applies a to s and returns the next user slice. The input
// is never mutated; unrecognized actions pass through unchanged.
func ReduceUser(s UserState, a Action) UserState {
	switch a := a.(type) {
	case UserSignupRequest, UserSigninRequest:
		s.IsLoading = true
		return s
	case UserSignupSuccess:
		return signedIn(s, a.User)
	case UserSigninSuccess:
		return signedIn(s, a.User)
	case UserSignupFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case UserSigninFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case UserLogoutRequest:
		s.IsLoading = true
		return s
	case UserLogoutSuccess:
		// Back to the anonymous state wholesale.
		return UserState{}
	case FetchProfileRequest, EditProfileRequest:
		s.IsLoading = true
		return s
	case FetchProfileSuccess:
		s.IsLoading = false
		s.Profile = a.Profile
		s.Error = APIError{}
		return s
	case EditProfileSuccess:
		s.IsLoading = false
		s.Profile = a.Profile
		s.FullName = a.Profile.FullName
		s.Error = APIError{}
		return s
	case FetchProfileFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case EditProfileFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	case UploadUserImageRequest:
		s.IsLoading = true
		return s
	case UploadUserImageSuccess:
		s.IsLoading = false
		s.Profile.UserImage = a.URL
		s.Error = APIError{}
		return s
	case UploadUserImageFailure:
		s.IsLoading = false
		s.Error = a.Err
		return s
	default:
		return s
	}
}

func signedIn(s UserState, u AuthenticatedUser) UserState {
	s.IsLoading = false
	s.ID = u.ID
	s.Username = u.Username
	s.FullName = u.FullName
	s.Email = u.Email
	s.IsAuthenticated = true
	s.Error = APIError{}
	return s
}
