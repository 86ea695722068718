package manage

import "errors"

var (
	ErrNotFound      = errors.New("property not found")
	ErrForbidden     = errors.New("forbidden")
	ErrDuplicateName = errors.New("property name already used by this owner")
	ErrRoomNotFound  = errors.New("room not found")
	ErrNoBuilding    = errors.New("building not configured")
	ErrInvalidLayout = errors.New("invalid building layout")
	ErrEmptyDocument = errors.New("legacy document has no building data")
)
