package command

import "fmt"

// DuplicateIDError reports an attempt to register a command under an ID that
// is already taken.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.ID)
}

// NotFoundError reports a lookup of an unknown command ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q is not registered", e.ID)
}
