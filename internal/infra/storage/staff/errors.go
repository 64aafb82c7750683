package staff

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist.
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
