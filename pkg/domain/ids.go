// Package domain holds shared domain primitives: typed identifiers parsed at
// trust boundaries so the rest of the code never handles raw strings.
package domain

import (
	"github.com/google/uuid"

	dErrors "docflow/pkg/domain-errors"
)

// Typed IDs prevent accidental cross-assignment between entity identifiers.
// All are UUID-backed; parse functions reject empty, malformed, and nil UUIDs.
type (
	DocumentID uuid.UUID
	EmployeeID uuid.UUID
	OfficeID   uuid.UUID
)

func parseUUID(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id must not be the nil UUID")
	}
	return u, nil
}

// ParseDocumentID validates and returns a DocumentID.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parseUUID("document", s)
	if err != nil {
		return DocumentID{}, err
	}
	return DocumentID(u), nil
}

// ParseEmployeeID validates and returns an EmployeeID.
func ParseEmployeeID(s string) (EmployeeID, error) {
	u, err := parseUUID("employee", s)
	if err != nil {
		return EmployeeID{}, err
	}
	return EmployeeID(u), nil
}

// ParseOfficeID validates and returns an OfficeID.
func ParseOfficeID(s string) (OfficeID, error) {
	u, err := parseUUID("office", s)
	if err != nil {
		return OfficeID{}, err
	}
	return OfficeID(u), nil
}

// NewDocumentID generates a fresh DocumentID.
func NewDocumentID() DocumentID { return DocumentID(uuid.New()) }

// NewEmployeeID generates a fresh EmployeeID.
func NewEmployeeID() EmployeeID { return EmployeeID(uuid.New()) }

// NewOfficeID generates a fresh OfficeID.
func NewOfficeID() OfficeID { return OfficeID(uuid.New()) }

func (id DocumentID) String() string { return uuid.UUID(id).String() }
func (id EmployeeID) String() string { return uuid.UUID(id).String() }
func (id OfficeID) String() string   { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero value.
func (id DocumentID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id EmployeeID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id OfficeID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }

// Text marshalling keeps IDs as canonical UUID strings in JSON payloads and
// JSONB columns. Named UUID types do not inherit uuid.UUID's methods, so
// these are spelled out per type.

func (id DocumentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id EmployeeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id OfficeID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }

func (id *DocumentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *EmployeeID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *OfficeID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }
