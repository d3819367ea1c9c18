package converter

import "github.com/pkg/errors"

// Domain errors. Each one aborts the run; unresolvable seat locations are
// not errors and are flagged on the row instead.
var (
	ErrMultipleLists  = errors.New("multiple lists were present for a row")
	ErrUnknownLevel   = errors.New("unknown level")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownRow     = errors.New("unknown row")
)
