// Package service contains application services: relationship toggling,
// discovery listings, authored-resource CRUD and authentication.
package service

import (
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/errs"
)

// requireActor rejects calls without an authenticated subject.
func requireActor(actor uuid.UUID) error {
	if actor == uuid.Nil {
		return errs.ErrUnauthorized
	}
	return nil
}

// requireText trims s and rejects it when empty.
func requireText(field, s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", errs.InvalidParameter(field, s)
	}
	return v, nil
}
