// Package views models the state of each dashboard page as a plain struct
// changed only through named actions. Handlers rebuild a view from request
// parameters by replaying the actions, then derive the page from it.
package views

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid view action")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAction, fmt.Sprintf(format, args...))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
