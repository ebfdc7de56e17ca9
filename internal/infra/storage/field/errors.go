package field

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("field.repository: field not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("field.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("field.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("field.repository: failed to scan row")
)
