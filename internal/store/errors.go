package store

import "errors"

// Sentinel errors returned by salt stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSaltNotFound is returned when no encryption salt has been persisted
	// yet, i.e. the installation was never unlocked.
	ErrSaltNotFound = errors.New("encryption salt not found")

	// ErrSaltAlreadyExists is returned by CreateSalt when a salt is already
	// present. The stored salt is left untouched.
	ErrSaltAlreadyExists = errors.New("encryption salt already exists")

	// ErrCorruptedSalt is returned when the persisted value cannot be
	// decoded back into salt bytes.
	ErrCorruptedSalt = errors.New("persisted encryption salt is corrupted")

	// ErrEmptySalt is returned when CreateSalt is called with no bytes.
	ErrEmptySalt = errors.New("refusing to persist an empty salt")

	// ErrUnknownBackend is returned by [NewSaltStore] for an unsupported
	// storage backend name.
	ErrUnknownBackend = errors.New("unknown salt storage backend")
)

// Low-level operation errors. These are wrapped by store methods when an
// I/O or SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrOpeningStorage is returned when the backing database or file cannot
	// be opened or created.
	ErrOpeningStorage = errors.New("failed to open salt storage")
)
