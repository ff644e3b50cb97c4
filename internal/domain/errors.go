package domain

import "errors"

var (
	ErrStorage           = errors.New("storage error")
	ErrNotFound          = errors.New("not found")
	ErrUserExists        = errors.New("User already exists!")
	ErrUserNotExist      = errors.New("The user does not exist!")
	ErrIncorrectPassword = errors.New("Password is incorrect!")
)
