// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may succeed
// if attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as connection loss, lock
	// contention or a deadlock rollback.
	Retryable
)

// ErrorClassificator inspects driver errors for one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports a primary key or unique constraint failure.
	IsUniqueViolation(err error) bool
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. Anything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
//
// Retryable codes:
//   - Class 08: connection exceptions (08000, 08003, 08006)
//   - Class 40: transaction rollback, serialization failure, deadlock
//   - Class 57: cannot connect now (57P03)
//
// Every other code, including class 22, 23 and 42, is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}
