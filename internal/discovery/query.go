// Package discovery turns listing parameters into bounded query descriptors
// and runs them against a scan/count source.
package discovery

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/ident"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortField is a closed set of sortable attributes. Stores map each value to
// their own column; caller input never reaches a query as text.
type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortTitle     SortField = "title"
	SortDuration  SortField = "duration"
)

// Direction is the sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// RawQuery carries listing parameters as received from the caller.
type RawQuery struct {
	Page     string
	Limit    string
	Query    string
	SortBy   string
	SortType string
	Owner    string
}

// Filter narrows the matching set. Zero values mean "no constraint".
type Filter struct {
	Text    string    // case-insensitive substring over the store's text columns
	OwnerID uuid.UUID // videos only
	VideoID uuid.UUID // comments only
}

// Descriptor is a normalized query. It is pure data.
type Descriptor struct {
	Page          int
	Skip          int
	Limit         int
	Filter        Filter
	SortField     SortField
	SortDirection Direction
}

// Schema describes what a listing accepts.
type Schema struct {
	Sortable []SortField
	MaxLimit int
}

// Videos is the schema for video listings.
var Videos = Schema{Sortable: []SortField{SortCreatedAt, SortTitle, SortDuration}, MaxLimit: MaxLimit}

// Comments is the schema for comment listings.
var Comments = Schema{Sortable: []SortField{SortCreatedAt}, MaxLimit: MaxLimit}

// WithMaxLimit returns a copy of s with a different page size cap.
func (s Schema) WithMaxLimit(n int) Schema {
	if n > 0 {
		s.MaxLimit = n
	}
	return s
}

// Build validates raw and produces a descriptor.
func (s Schema) Build(raw RawQuery) (Descriptor, error) {
	page, err := positive("page", raw.Page, DefaultPage)
	if err != nil {
		return Descriptor{}, err
	}
	limit, err := positive("limit", raw.Limit, DefaultLimit)
	if err != nil {
		return Descriptor{}, err
	}
	if s.MaxLimit > 0 && limit > s.MaxLimit {
		return Descriptor{}, errs.InvalidParameter("limit", raw.Limit)
	}

	d := Descriptor{
		Page:          page,
		Skip:          skip(page, limit),
		Limit:         limit,
		SortField:     SortCreatedAt,
		SortDirection: Desc,
	}

	d.Filter.Text = strings.TrimSpace(raw.Query)

	// owner is advisory: a bad value is dropped, not rejected
	if ident.Valid(raw.Owner) {
		d.Filter.OwnerID = uuid.FromStringOrNil(strings.TrimSpace(raw.Owner))
	}

	if by := strings.TrimSpace(raw.SortBy); by != "" {
		f, ok := s.field(by)
		if !ok {
			return Descriptor{}, errs.InvalidParameter("sortBy", raw.SortBy)
		}
		d.SortField = f
		d.SortDirection = Asc
		if strings.TrimSpace(raw.SortType) == "desc" {
			d.SortDirection = Desc
		}
	}
	return d, nil
}

func (s Schema) field(name string) (SortField, bool) {
	for _, f := range s.Sortable {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// skip is (page-1)*limit, saturating at math.MaxInt; such a window lies past
// any store and scans empty.
func skip(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func positive(field, raw string, def int) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errs.InvalidParameter(field, raw)
	}
	return n, nil
}
