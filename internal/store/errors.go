package store

import "fmt"

// NotFoundError indicates that a referenced entity does not exist
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InvalidParentError indicates a create or move that references a
// parent which does not exist or cannot hold the entity
type InvalidParentError struct {
	Kind     string
	ParentID string
	Reason   string
}

func (e *InvalidParentError) Error() string {
	return fmt.Sprintf("invalid parent %q for %s: %s", e.ParentID, e.Kind, e.Reason)
}

// ImmutableFieldError indicates an update that attempted to change a
// field that can only change through a dedicated operation (or not at all)
type ImmutableFieldError struct {
	Kind  string
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field %q of %s cannot be changed through update", e.Field, e.Kind)
}

// DuplicateLinkError indicates that a performance criteria link already exists
type DuplicateLinkError struct {
	PCID     string
	TargetID string
}

func (e *DuplicateLinkError) Error() string {
	return fmt.Sprintf("performance criteria %q is already linked to %q", e.PCID, e.TargetID)
}

// ValidationError indicates a request payload that fails domain validation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
