package domain

import "errors"

var (
	// ErrCourseNotFound signals a missing course id.
	ErrCourseNotFound = errors.New("course not found")
	// ErrDuplicateCourse signals a catalog with duplicate course ids,
	// a caller contract violation surfaced at load time.
	ErrDuplicateCourse = errors.New("duplicate course id")
	// ErrEmptyQuery signals a request without query text.
	ErrEmptyQuery = errors.New("query is required")
	// ErrCatalogUnavailable signals a catalog source that could not be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
