// Package access holds authorization checks for authored resources.
package access

import (
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/errs"
)

// Authorize fails with errs.ErrForbidden unless actor is the recorded owner.
func Authorize(actor, owner uuid.UUID) error {
	if actor == uuid.Nil || actor != owner {
		return fmt.Errorf("subject %s does not own resource: %w", actor, errs.ErrForbidden)
	}
	return nil
}
