package columns

import (
	"fmt"
	"strings"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// ColumnMap maps each resolved role to its header in one source.
type ColumnMap struct {
	source  models.Source
	headers map[Role]string
}

// Header returns the header resolved for role.
func (m ColumnMap) Header(role Role) (string, bool) {
	h, ok := m.headers[role]
	return h, ok
}

// Source returns the source the map was resolved for.
func (m ColumnMap) Source() models.Source {
	return m.source
}

// Cell returns the row's cell for role, or "" when the role is unresolved.
func (m ColumnMap) Cell(row models.RawRow, role Role) string {
	h, ok := m.headers[role]
	if !ok {
		return ""
	}
	return row[h]
}

// ResolutionError reports a required role with no matching header.
type ResolutionError struct {
	Source  models.Source
	Role    Role
	Headers []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s source: no column for role %q among headers %q", e.Source, e.Role, e.Headers)
}

// Resolve maps every required role to a header. For each role the headers are
// scanned in their original order and the first one whose lower-cased text
// contains any alias of the role wins.
func Resolve(source models.Source, headers []string, aliases Aliases, required []Role) (ColumnMap, error) {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}

	m := ColumnMap{source: source, headers: make(map[Role]string, len(required))}
	for _, role := range required {
		header, ok := match(headers, lowered, aliases[role])
		if !ok {
			return ColumnMap{}, &ResolutionError{Source: source, Role: role, Headers: headers}
		}
		m.headers[role] = header
	}
	return m, nil
}

func match(headers, lowered, aliases []string) (string, bool) {
	for i, h := range lowered {
		for _, alias := range aliases {
			if strings.Contains(h, alias) {
				return headers[i], true
			}
		}
	}
	return "", false
}
