package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrInvalidRole        = errors.New("invalid role")

	ErrUserNotFound         = errors.New("user not found")
	ErrCropNotFound         = errors.New("crop not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPostNotFound         = errors.New("post not found")

	ErrNotOwner        = errors.New("record belongs to another user")
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrFeedUnavailable = errors.New("news feed unavailable")
	ErrDatabaseError   = errors.New("database error")
)
