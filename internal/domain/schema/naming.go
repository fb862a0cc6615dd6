package schema

import (
	"strings"

	domainerrors "github.com/leengari/colstore/internal/domain/errors"
)

// Separator joins the parts of a qualified name: db, db.table, db.table.column.
const Separator = "."

// Qualify joins name parts into a qualified name.
func Qualify(parts ...string) string {
	return strings.Join(parts, Separator)
}

// ValidatePart checks a single, unqualified name component.
func ValidatePart(op, name string) error {
	if name == "" {
		return domainerrors.NewInvalidArgument(op, name, "name must not be empty")
	}
	if strings.Contains(name, Separator) {
		return domainerrors.NewInvalidArgument(op, name, "name must not contain '"+Separator+"'")
	}
	return nil
}

// CheckLength fails with NameTooLong if qualified is longer than limit.
func CheckLength(op, qualified string, limit int) error {
	if len(qualified) > limit {
		return domainerrors.NewNameTooLong(op, qualified, limit)
	}
	return nil
}

// Unqualified returns the last component of a qualified name.
func Unqualified(qualified string) string {
	if i := strings.LastIndex(qualified, Separator); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
