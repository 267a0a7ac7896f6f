package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateKey is returned when an INSERT or UPDATE violates a unique
	// constraint (PostgreSQL 23505), e.g. an email that is already in use.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenceNotFound is returned when a write references a row that does
	// not exist (PostgreSQL 23503), e.g. a runway pointing to an unknown airport.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("user not found")

	// ErrCredentialNotFound is returned when an account has no credential row.
	ErrCredentialNotFound = errors.New("password entry not found")

	// ErrEntityNotFound is returned when a facility or oversight record
	// identified by id does not exist.
	ErrEntityNotFound = errors.New("record not found")

	// ErrInvalidFilter is returned when a list or report filter value cannot
	// be interpreted for its declared comparison kind.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrResetTokenNotConsumable is returned when the conditional password
	// update finds no unused credential carrying the expected token hash.
	ErrResetTokenNotConsumable = errors.New("reset token is not consumable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
