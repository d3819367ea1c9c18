// =============================================================================
// Seatcard Sorter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command of the tool. It
// turns a ticketing export into a sorted seat-card file.
//
// COMMAND USAGE:
//   seatcard convert --source <export> [flags]
//
// FLAGS:
//   --source   : the ticketing export, CSV or XLSX (required)
//   --target   : the file to write (default: next to the source, with the
//                configured target suffix)
//   --versions : a file with one version name per line
//   --mapping  : a CSV or XLSX file of per-performance version texts
//
// The target must not exist yet.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seatcard-sorter/internal/converter"
	"github.com/ginjaninja78/seatcard-sorter/pkg/utils"
)

func newConvertCmd(a *app) *cobra.Command {
	var req converter.ConvertRequest

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a ticketing export into sorted seat cards",
		Long: `The convert command reads a ticketing export, keeps one seat per customer
(the earliest performance with a resolvable location), assigns each customer
a mailing version from the list columns and writes the result in print order.

Seats whose location cannot be resolved are kept, marked with "ERROR " in the
location column, and written last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkConvertFlags(&req, a.cfg.TargetSuffix); err != nil {
				return withCode(exitUsage, err)
			}

			result, err := a.converter().Convert(req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d seat cards (%d unresolved) from %d rows to %s\n",
				result.Stats.RowsWritten, result.Stats.Unresolved, result.Stats.RowsRead, result.Target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Source, "source", "s", "", "Ticketing export to convert (CSV or XLSX)")
	cmd.Flags().StringVarP(&req.Target, "target", "t", "", "Seat-card file to write")
	cmd.Flags().StringVar(&req.VersionsPath, "versions", "", "File with one version name per line")
	cmd.Flags().StringVar(&req.MappingPath, "mapping", "", "Version mapping file (CSV or XLSX)")
	return cmd
}

// checkConvertFlags validates the file flags and fills in the default target.
func checkConvertFlags(req *converter.ConvertRequest, suffix string) error {
	if req.Source == "" {
		return errors.New("--source is required")
	}
	if err := utils.RequireFile("source", req.Source); err != nil {
		return err
	}
	if req.Target == "" {
		req.Target = utils.DefaultTargetPath(req.Source, suffix)
	}
	if err := utils.RequireAbsent("target", req.Target); err != nil {
		return err
	}
	if req.VersionsPath != "" {
		if err := utils.RequireFile("versions", req.VersionsPath); err != nil {
			return err
		}
	}
	if req.MappingPath != "" {
		if err := utils.RequireFile("mapping", req.MappingPath); err != nil {
			return err
		}
	}
	return nil
}
