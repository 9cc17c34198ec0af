package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotLoggedIn         = errors.New("Unauthorized access")
	ErrNoPermission        = errors.New("Forbidden access")
	ErrInvalidCredentials  = errors.New("Email/username or password is incorrect")
	ErrNotFound            = errors.New("Resource not found")
	ErrEmailAlreadyUsed    = errors.New("Email has already been used")
	ErrUsernameAlreadyUsed = errors.New("Username has already been used")
	ErrUnitIDAlreadyUsed   = errors.New("AC unit ID has already been used")
	ErrInvalidAssignee     = errors.New("One or more assigned employees are invalid")
	ErrMissingFields       = errors.New("Missing required fields")
	ErrConflict            = errors.New("Conflicting record found")
)

var errorMap = map[error]int{
	ErrInternalServer:      ErrStatusInternalServer,
	ErrClient:              ErrStatusClient,
	ErrNotLoggedIn:         ErrStatusNotLoggedIn,
	ErrNoPermission:        ErrStatusNoPermission,
	ErrInvalidCredentials:  ErrStatusUnauthorized,
	ErrNotFound:            ErrStatusNotFound,
	ErrEmailAlreadyUsed:    ErrStatusClient,
	ErrUsernameAlreadyUsed: ErrStatusClient,
	ErrUnitIDAlreadyUsed:   ErrStatusConflict,
	ErrInvalidAssignee:     ErrStatusClient,
	ErrMissingFields:       ErrStatusClient,
	ErrConflict:            ErrStatusConflict,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
