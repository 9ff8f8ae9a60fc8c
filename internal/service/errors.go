package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateFavorite  = errors.New("favorite already exists")
	ErrNotOwner           = errors.New("not the owner")
)
