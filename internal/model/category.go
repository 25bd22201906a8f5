// Package model defines the core domain types persisted by fintrack.
package model

import (
	"strings"
	"time"
)

// Category is a named grouping for expenses. Names are unique under
// case-insensitive, whitespace-trimmed comparison; categories are created
// implicitly the first time a name is used and are never deleted.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int
}

// NormalizeCategoryName canonicalizes a raw category name for lookup and
// insertion: trimmed and lowercased. Lookup and insert must normalize
// identically or duplicate categories appear.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
