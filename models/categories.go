// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgTypeMap is used only for text[] encoding and decoding. pgtype.Map is
// safe for concurrent use once its registrations are complete.
var pgTypeMap = pgtype.NewMap()

// Categories is the ordered list of free-text labels attached to a note.
//
// Order is preserved for display but carries no meaning for queries, which
// treat the list as a set with exact-match membership. In PostgreSQL the
// value is stored in a text[] column; Categories implements [driver.Valuer]
// and [sql.Scanner] so it can be passed to and scanned from database/sql
// directly.
type Categories []string

// Normalize trims every label, drops empty ones and removes duplicates while
// keeping the first occurrence order. It never returns nil.
func (c Categories) Normalize() Categories {
	normalized := make(Categories, 0, len(c))
	seen := make(map[string]struct{}, len(c))

	for _, category := range c {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		normalized = append(normalized, category)
	}

	return normalized
}

// Contains reports whether category is an exact member of c.
func (c Categories) Contains(category string) bool {
	for _, existing := range c {
		if existing == category {
			return true
		}
	}
	return false
}

// Value implements [driver.Valuer] by encoding c as a PostgreSQL text array
// literal (e.g. {work,"two words"}).
func (c Categories) Value() (driver.Value, error) {
	if c == nil {
		c = Categories{}
	}

	buf, err := pgTypeMap.Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(c), nil)
	if err != nil {
		return nil, fmt.Errorf("error encoding categories: %w", err)
	}

	return string(buf), nil
}

// Scan implements [sql.Scanner] by decoding a PostgreSQL text array literal.
// A NULL column scans into an empty, non-nil slice.
func (c *Categories) Scan(src any) error {
	var buf []byte
	switch value := src.(type) {
	case nil:
		*c = Categories{}
		return nil
	case string:
		buf = []byte(value)
	case []byte:
		buf = value
	default:
		return fmt.Errorf("unsupported categories source type %T", src)
	}

	var decoded []string
	if err := pgTypeMap.Scan(pgtype.TextArrayOID, pgtype.TextFormatCode, buf, &decoded); err != nil {
		return fmt.Errorf("error decoding categories: %w", err)
	}

	if decoded == nil {
		decoded = []string{}
	}
	*c = decoded
	return nil
}
