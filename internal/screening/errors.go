package screening

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError indicates a missing application or job posting lookup. It
// propagates to the caller; the HTTP layer maps it to a 404.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// PersistError indicates the screening result could not be written back to
// the application record.
type PersistError struct {
	ApplicationID uuid.UUID
	Cause         error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist screening result for application %s: %v", e.ApplicationID, e.Cause)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}
