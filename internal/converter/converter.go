// =============================================================================
// Seatcard Sorter - Converter Module
// =============================================================================
//
// This module orchestrates the three runs the command line offers.
//
// CONVERT PIPELINE:
//   1. Read the version names (or use the configured defaults)
//   2. Read the version mapping, if one is given
//   3. Read the ticketing export
//   4. Transform every export row into a seat-card row
//   5. Keep one row per customer
//   6. Sort into print order
//   7. Write the target file
//
// RESORT PIPELINE:
//   Read an existing seat-card file, rebuild the sort fields, sort, write.
//
// DUPLICATES PIPELINE:
//   As resort, but only the runs of rows sharing a seat and a performance
//   are written.
//
// Any error aborts the run before the target is written.
//
// =============================================================================

package converter

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// Source is the file that was read.
	Source string

	// Target is the file that was written.
	Target string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsRead is the number of data rows in the source file.
	RowsRead int

	// RowsWritten is the number of rows in the target file.
	RowsWritten int

	// Unresolved is the number of written rows whose location could not be
	// resolved.
	Unresolved int

	// Duplicates is the number of rows written by a duplicates run.
	Duplicates int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options holds the settings shared by every run.
type Options struct {
	// VersionNames are used when a convert run has no version-name file.
	VersionNames []string

	// DateLayouts are tried in order when parsing performance dates.
	DateLayouts []string

	// LeapYear is the year assumed for MM/DD dates read back by a resort.
	LeapYear int

	// WriteBOM prefixes the target file with a UTF-8 byte-order mark.
	WriteBOM bool
}

// Logger is the logging surface the converter needs. logrus.FieldLogger
// satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Converter runs the convert, resort and duplicates pipelines.
type Converter struct {
	opts   Options
	logger Logger
}

// ConvertRequest names the files of a convert run. VersionsPath and
// MappingPath are optional.
type ConvertRequest struct {
	Source       string
	Target       string
	VersionsPath string
	MappingPath  string
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a Converter. A nil logger discards all output.
func New(opts Options, logger Logger) *Converter {
	if len(opts.VersionNames) == 0 {
		opts.VersionNames = DefaultVersionNames
	}
	if opts.LeapYear == 0 {
		opts.LeapYear = 2016
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Converter{opts: opts, logger: logger}
}

// =============================================================================
// PIPELINES
// =============================================================================

// Convert turns a ticketing export into a sorted seat-card file.
func (c *Converter) Convert(req ConvertRequest) (Result, error) {
	start := time.Now()
	result := Result{Source: req.Source, Target: req.Target}

	names := c.opts.VersionNames
	if req.VersionsPath != "" {
		var err error
		if names, err = ReadVersionNames(req.VersionsPath); err != nil {
			return result, err
		}
		c.logger.Debugf("Read %d version names from %s", len(names), req.VersionsPath)
	}

	var mapping VersionMapping
	var present []string
	if req.MappingPath != "" {
		var err error
		if mapping, present, err = ReadVersionMappings(req.MappingPath, names, c.opts.DateLayouts); err != nil {
			return result, err
		}
		c.logger.Debugf("Version mapping has columns for %v", present)
	}

	sources, err := ReadSourceRows(req.Source, c.opts.DateLayouts)
	if err != nil {
		return result, err
	}
	result.Stats.RowsRead = len(sources)
	c.logger.Debugf("Read %d export rows", len(sources))

	rows, headers, err := Transform(names, mapping, present, sources)
	if err != nil {
		return result, err
	}
	result.Stats.Unresolved = c.reportUnresolved(rows)

	if err := WriteResultRows(req.Target, headers, rows, c.opts.WriteBOM); err != nil {
		return result, err
	}
	result.Stats.RowsWritten = len(rows)
	result.Stats.ProcessingTime = time.Since(start)

	c.logger.Infof("Wrote %d seat cards for %d export rows to %s", len(rows), len(sources), req.Target)
	return result, nil
}

// Resort re-sorts an existing seat-card file into print order.
func (c *Converter) Resort(source, target string) (Result, error) {
	start := time.Now()
	result := Result{Source: source, Target: target}

	rows, headers, err := c.readAndResort(source)
	if err != nil {
		return result, err
	}
	result.Stats.RowsRead = len(rows)
	result.Stats.Unresolved = c.reportUnresolved(rows)

	if err := WriteResultRows(target, headers, rows, c.opts.WriteBOM); err != nil {
		return result, err
	}
	result.Stats.RowsWritten = len(rows)
	result.Stats.ProcessingTime = time.Since(start)

	c.logger.Infof("Resorted %d seat cards to %s", len(rows), target)
	return result, nil
}

// FindDuplicates writes the rows of an existing seat-card file that share a
// seat and a performance with a neighbor in print order.
func (c *Converter) FindDuplicates(source, target string) (Result, error) {
	start := time.Now()
	result := Result{Source: source, Target: target}

	rows, headers, err := c.readAndResort(source)
	if err != nil {
		return result, err
	}
	result.Stats.RowsRead = len(rows)

	dupes := FindDuplicates(rows)
	result.Stats.Duplicates = len(dupes)

	if err := WriteResultRows(target, headers, dupes, c.opts.WriteBOM); err != nil {
		return result, err
	}
	result.Stats.RowsWritten = len(dupes)
	result.Stats.ProcessingTime = time.Since(start)

	c.logger.Infof("Found %d duplicate seat cards among %d, written to %s", len(dupes), len(rows), target)
	return result, nil
}

func (c *Converter) readAndResort(source string) ([]types.ResultRow, []string, error) {
	rows, headers, err := ReadResultRows(source)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debugf("Read %d seat cards from %s", len(rows), source)

	if err := Resort(rows, c.opts.LeapYear); err != nil {
		return nil, nil, err
	}
	return rows, headers, nil
}

func (c *Converter) reportUnresolved(rows []types.ResultRow) int {
	count := 0
	for _, row := range rows {
		if row.IsError() {
			count++
			c.logger.Warnf("Unresolved location for customer_no %s: %q", row.CustomerNumber, row.Location)
		}
	}
	return count
}

// =============================================================================
// TRANSFORM
// =============================================================================

// Transform converts export rows into sorted seat cards.
//
// PARAMETERS:
//   - names: version names by list position
//   - mapping: per-performance version texts; may be nil
//   - present: version names that have a mapping column, in output order
//   - sources: the export rows
//
// RETURNS:
//   - one row per customer, in print order
//   - the output header: the base columns followed by present
func Transform(names []string, mapping VersionMapping, present []string, sources []types.SourceRow) ([]types.ResultRow, []string, error) {
	transformer := NewTransformer(names, mapping)

	rows := make([]types.ResultRow, 0, len(sources))
	for _, src := range sources {
		row, err := transformer.Transform(src)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	rows = Canonicalize(rows)
	if err := Sort(rows); err != nil {
		return nil, nil, errors.Wrap(err, "unable to sort seat cards")
	}

	headers := make([]string, 0, len(types.ResultColumns)+len(present))
	headers = append(headers, types.ResultColumns...)
	headers = append(headers, present...)
	return rows, headers, nil
}
