package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAdminAlreadyExists is returned when an attempt to seed a new admin
	// account fails because one with the same username already exists.
	ErrAdminAlreadyExists = errors.New("admin already exists")

	// ErrAdminNotFound is returned when a query expected to match an admin
	// record produces an empty result set.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrPageNotFound is returned when a query, update, or delete targets a
	// memory page (identified by its URL id) that does not exist.
	ErrPageNotFound = errors.New("memory page was not found")

	// ErrPageIDAlreadyExists is returned when an INSERT or an id-changing
	// UPDATE collides with another page's identifier.
	ErrPageIDAlreadyExists = errors.New("memory page id already exists")

	// ErrPageNotSaved is returned when a write completes without a driver
	// error but the number of affected rows is zero, indicating that nothing
	// was actually persisted.
	ErrPageNotSaved = errors.New("memory page was not saved")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan memory page row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan memory page rows")

	// ErrEncodingMemories is returned when the memories collection of a page
	// cannot be serialized to its JSON column representation.
	ErrEncodingMemories = errors.New("failed to encode memories to json")

	// ErrDecodingMemories is returned when the memories JSON column of a
	// stored page cannot be deserialized back into the model.
	ErrDecodingMemories = errors.New("failed to decode memories json")
)
