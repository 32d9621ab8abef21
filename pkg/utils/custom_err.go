package utils

import "errors"

var (
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountNotAllowed    = errors.New("account not allowed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("missing or invalid authentication")
	ErrPasswordUnchanged    = errors.New("new password matches current password")
	ErrInsufficientPoints   = errors.New("not enough points")
	ErrInvalidPointPrice    = errors.New("point price must not be negative")
	ErrLeafNotFound         = errors.New("leaf not found")
	ErrPlantObjNotFound     = errors.New("plant object not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrDatabaseError        = errors.New("database error")
)
