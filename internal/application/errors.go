package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrNotProjectOwner    = errors.New("not the project owner")
)

// FieldErrors carries input problems discovered at the service layer
// (uniqueness conflicts) in the same field -> messages shape the
// binding layer produces, so handlers render both identically.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}
