package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind classifies a catalog or storage failure.
// A Kind is itself an error so it can be used as an errors.Is target:
//
//	errors.Is(err, domainerrors.ErrNotFound)
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindNameTooLong
	KindOutOfMemory
	KindNotFound
	KindDuplicateName
	KindTooManyColumns
	KindNoDatabase
	KindStaleHandle
	KindOutOfRange
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindInvalidArgument: "invalid_argument",
	KindNameTooLong:     "name_too_long",
	KindOutOfMemory:     "out_of_memory",
	KindNotFound:        "not_found",
	KindDuplicateName:   "duplicate_name",
	KindTooManyColumns:  "too_many_columns",
	KindNoDatabase:      "no_database",
	KindStaleHandle:     "stale_handle",
	KindOutOfRange:      "out_of_range",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error lets a bare Kind act as a sentinel.
func (k Kind) Error() string {
	return k.String()
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidArgument error = KindInvalidArgument
	ErrNameTooLong     error = KindNameTooLong
	ErrOutOfMemory     error = KindOutOfMemory
	ErrNotFound        error = KindNotFound
	ErrDuplicateName   error = KindDuplicateName
	ErrTooManyColumns  error = KindTooManyColumns
	ErrNoDatabase      error = KindNoDatabase
	ErrStaleHandle     error = KindStaleHandle
	ErrOutOfRange      error = KindOutOfRange
)

// Error describes a failed catalog or storage operation
type Error struct {
	Kind   Kind   // failure classification
	Op     string // operation name, e.g. "create_table"
	Name   string // offending (usually qualified) name, empty if none
	Reason string // human-readable explanation (optional)
	Err    error  // underlying cause (optional)
}

func (e *Error) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("%s failed", e.Op))
	}
	parts = append(parts, fmt.Sprintf("(%s)", e.Kind))

	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("name=%q", e.Name))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	msg := strings.Join(parts, " - ")
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a Kind sentinel or another *Error of the same kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if stderrors.As(err, &k) {
		return k
	}
	return KindUnknown
}

func NewInvalidArgument(op, name, reason string) *Error {
	return &Error{
		Kind:   KindInvalidArgument,
		Op:     op,
		Name:   name,
		Reason: reason,
	}
}

func NewNameTooLong(op, name string, limit int) *Error {
	return &Error{
		Kind:   KindNameTooLong,
		Op:     op,
		Name:   name,
		Reason: fmt.Sprintf("length %d exceeds limit %d", len(name), limit),
	}
}

func NewNotFound(op, name string) *Error {
	return &Error{
		Kind:   KindNotFound,
		Op:     op,
		Name:   name,
		Reason: "no such entry",
	}
}

func NewDuplicateName(op, name string) *Error {
	return &Error{
		Kind:   KindDuplicateName,
		Op:     op,
		Name:   name,
		Reason: "name already registered",
	}
}

func NewOutOfMemory(op, name string, cause error) *Error {
	return &Error{
		Kind:   KindOutOfMemory,
		Op:     op,
		Name:   name,
		Reason: "allocation refused",
		Err:    cause,
	}
}

func NewTooManyColumns(op, table string, declared int) *Error {
	return &Error{
		Kind:   KindTooManyColumns,
		Op:     op,
		Name:   table,
		Reason: fmt.Sprintf("table declares %d columns", declared),
	}
}

func NewNoDatabase(op string) *Error {
	return &Error{
		Kind:   KindNoDatabase,
		Op:     op,
		Reason: "no active database, call create_db first",
	}
}

func NewStaleHandle(op string) *Error {
	return &Error{
		Kind:   KindStaleHandle,
		Op:     op,
		Reason: "handle refers to a replaced database",
	}
}

func NewOutOfRange(op, name string, index, length int) *Error {
	return &Error{
		Kind:   KindOutOfRange,
		Op:     op,
		Name:   name,
		Reason: fmt.Sprintf("row %d outside table length %d", index, length),
	}
}
