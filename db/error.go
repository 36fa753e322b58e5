package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies the failure of a store operation.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindConflict
)

var kindNames = [...]string{
	KindInternal: "internal",
	KindNotFound: "not found",
	KindInvalid:  "invalid",
	KindConflict: "conflict",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// postgres error codes
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgStringTooLong   = "22001"
	pgInvalidText     = "22P02"
)

const (
	entDocument = "document"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrDataCorrupted  = errors.New("data is corrupted")
)

// OpError describes the failed store operation.
type OpError struct {
	// Op is the name of the failed operation, e.g. "get-document".
	Op string
	// Kind is the class of the failure.
	Kind Kind
	// Entity is the name of the entity the operation worked on.
	Entity string
	// EntityID is the ID of the entity, if known.
	EntityID string
	// FailingField is the column which violated a constraint, if known.
	FailingField string
	Err          error
}

func (e *OpError) Error() string {
	if e.EntityID != "" {
		return fmt.Sprintf("%s: %s %s %s: %v", e.Op, e.Kind, e.Entity, e.EntityID, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Kind, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func newOpError(op string, kind Kind, entity string, entityID string, err error) *OpError {
	return &OpError{
		Op:       op,
		Kind:     kind,
		Entity:   entity,
		EntityID: entityID,
		Err:      err,
	}
}

func notFoundError(op string, entity string, entityID string) *OpError {
	return newOpError(op, KindNotFound, entity, entityID, ErrEntityNotFound)
}

// sqlError classifies the error returned by postgres.
func sqlError(op string, entity string, entityID string, err error) *OpError {
	opErr := newOpError(op, KindInternal, entity, entityID, err)

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return opErr
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		opErr.Kind = KindConflict
	case pgCheckViolation, pgStringTooLong, pgInvalidText:
		opErr.Kind = KindInvalid
	}

	opErr.FailingField = pgErr.ColumnName
	if opErr.FailingField == "" {
		opErr.FailingField = pgErr.ConstraintName
	}

	return opErr
}

// IsKind reports whether err is an *OpError of the given Kind.
func IsKind(err error, kind Kind) bool {
	var opErr *OpError
	return errors.As(err, &opErr) && opErr.Kind == kind
}
