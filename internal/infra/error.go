package infra

import (
	"errors"
	"log/slog"

	"agenda-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepositoryError(kind RepositoryErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	return NewRepositoryError(kind, msg, err)
}

// WrapPgErr classifies a driver error by SQLSTATE; anything unrecognised is a DB failure.
func WrapPgErr(slogger *slog.Logger, msg string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return WrapRepoErr(slogger, KindDBFailure, msg, err)
	}

	var kind RepositoryErrorKind
	switch pgErr.Code {
	case "23505":
		kind = KindDuplicateKey
	case "23503":
		kind = KindForeignKeyViolated
	case "23514":
		if pgErr.ConstraintName == ConstraintMaxPerDay || pgErr.ConstraintName == ConstraintMaxPerHour {
			kind = KindCapacityExceeded
		} else {
			kind = KindConflict
		}
	default:
		return WrapRepoErr(slogger, KindDBFailure, msg, err)
	}

	slogger.Info("Repository constraint: "+msg,
		slog.String("kind", string(kind)),
		slog.String("constraint", pgErr.ConstraintName))
	return RepositoryError{Kind: kind, Constraint: pgErr.ConstraintName, msg: msg, err: errs.Wrap(err, msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ViolatedConstraint returns the constraint name carried by err, or "".
func ViolatedConstraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCapacityExceeded   RepositoryErrorKind = "CAPACITY_EXCEEDED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)

// Names raised by the appointments capacity trigger.
const (
	ConstraintMaxPerDay  = "appointments_max_per_day"
	ConstraintMaxPerHour = "appointments_max_per_hour"
)
