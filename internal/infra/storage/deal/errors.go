package deal

import "errors"

var (
	// ErrDealNotFound is returned when the deal does not exist.
	ErrDealNotFound = errors.New("deal.repository: deal not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("deal.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("deal.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("deal.repository: failed to scan row")
)
