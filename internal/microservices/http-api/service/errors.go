package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFollowNotFound   = errors.New("follow not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("you don't have permission to modify this resource")
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrSelfBlock        = errors.New("you cannot block yourself")
)

// ValidationError carries one message per offending input field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// err returns nil when no field failed, so callers can `return v.err()`.
func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
