package cmd

import (
	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/converter"
	"github.com/ginjaninja78/seatcard-sorter/internal/csvparser"
	"github.com/ginjaninja78/seatcard-sorter/internal/location"
	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

const (
	exitOK     = 0
	exitOther  = 1
	exitFormat = 2
	exitDomain = 3
	exitUsage  = 4
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

var domainErrors = []error{
	converter.ErrMultipleLists,
	converter.ErrUnknownLevel,
	converter.ErrUnknownSection,
	converter.ErrUnknownRow,
	location.ErrSection,
	location.ErrLocation,
	location.ErrSeatNumber,
	types.ErrCustomerNumber,
	types.ErrDate,
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}

	var pe *csvparser.ParseError
	if errors.As(err, &pe) {
		return exitFormat
	}

	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return exitDomain
		}
	}
	return exitOther
}
