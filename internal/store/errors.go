package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotSet is returned by [CredentialRepository.Get] before a
	// master credential has been stored.
	ErrCredentialNotSet = errors.New("master credential is not set")

	// ErrEmptyDatasetName is returned when saving a record without a name.
	ErrEmptyDatasetName = errors.New("dataset name is empty")

	// ErrEmptyCredential is returned when storing an empty credential.
	ErrEmptyCredential = errors.New("credential is empty")

	// ErrTransient marks a failure the classifier considers retryable
	// (lost connection, busy database, deadlock).
	ErrTransient = errors.New("transient storage error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan form field rows")

	// ErrDecodingValue is returned when a stored value cannot be opened by
	// the field codec.
	ErrDecodingValue = errors.New("failed to decode stored field value")
)

// ErrUnsupportedDSN is returned by [NewConnect] for a DSN that names neither
// a PostgreSQL URL nor a file path.
var ErrUnsupportedDSN = errors.New("unsupported DSN")
