package salon

import "errors"

var (
	// ErrSalonNotFound is returned when the salon does not exist.
	ErrSalonNotFound = errors.New("salon.repository: salon not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("salon.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("salon.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("salon.repository: failed to scan row")
)
