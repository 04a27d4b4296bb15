package services

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthor          = errors.New("only the author may modify this post")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
