// Package ident validates caller-supplied entity references.
package ident

import (
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/errs"
)

// Parse validates ref as an entity identifier. field names the request field
// in the returned error so the boundary can point at it.
func Parse(field, ref string) (uuid.UUID, error) {
	s := strings.TrimSpace(ref)
	id, err := uuid.FromString(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errs.InvalidReference(field, ref)
	}
	return id, nil
}

// Valid reports whether ref parses as an entity identifier.
func Valid(ref string) bool {
	_, err := Parse("", ref)
	return err == nil
}
