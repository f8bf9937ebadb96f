package intake

import "errors"

var (
	ErrBuildQuery = errors.New("intake.repository: failed to build query")
	ErrExecQuery  = errors.New("intake.repository: failed to execute query")
)
