package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/errs"
)

// sortColumns maps the closed set of sort fields to columns per table.
var (
	videoSortColumns = map[discovery.SortField]string{
		discovery.SortCreatedAt: "created_at",
		discovery.SortTitle:     "lower(title)",
		discovery.SortDuration:  "duration",
	}
	commentSortColumns = map[discovery.SortField]string{
		discovery.SortCreatedAt: "created_at",
	}
)

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// arg binds v and returns its placeholder.
func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *where) and(cond string) { w.conds = append(w.conds, cond) }

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// orderBy renders the ORDER BY clause; id breaks ties so pages are stable.
func orderBy(columns map[discovery.SortField]string, d discovery.Descriptor) (string, error) {
	col, ok := columns[d.SortField]
	if !ok {
		return "", errs.InvalidParameter("sortBy", string(d.SortField))
	}
	dir := "ASC"
	if d.SortDirection == discovery.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id ASC", col, dir), nil
}

// page renders LIMIT/OFFSET with bound arguments.
func (w *where) page(d discovery.Descriptor) string {
	limit := w.arg(d.Limit)
	offset := w.arg(d.Skip)
	return " LIMIT " + limit + " OFFSET " + offset
}
