package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seatcard-sorter/pkg/utils"
)

// fileFlags are the --source/--target pair shared by resort and dupes.
type fileFlags struct {
	source string
	target string
}

func (f *fileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "Seat-card file to read")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "File to write")
}

func (f *fileFlags) check() error {
	if f.source == "" || f.target == "" {
		return errors.New("--source and --target are required")
	}
	if err := utils.RequireFile("source", f.source); err != nil {
		return err
	}
	return utils.RequireAbsent("target", f.target)
}

func newResortCmd(a *app) *cobra.Command {
	var files fileFlags

	cmd := &cobra.Command{
		Use:   "resort",
		Short: "Re-sort an edited seat-card file into print order",
		Long: `The resort command reads a seat-card file written by convert, typically
after hand edits, and writes it back in print order. Every column is kept.
A location no longer in "LEVEL SECTION:ROW-SEAT" form is sorted last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.check(); err != nil {
				return withCode(exitUsage, err)
			}

			result, err := a.converter().Resort(files.source, files.target)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Resorted %d seat cards (%d unresolved) to %s\n",
				result.Stats.RowsWritten, result.Stats.Unresolved, result.Target)
			return nil
		},
	}

	files.register(cmd)
	return cmd
}

func newDupesCmd(a *app) *cobra.Command {
	var files fileFlags

	cmd := &cobra.Command{
		Use:   "dupes",
		Short: "List seat cards that share a seat and a performance",
		Long: `The dupes command reads a seat-card file, puts it in print order and writes
only the cards whose seat and performance date match a neighboring card.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.check(); err != nil {
				return withCode(exitUsage, err)
			}

			result, err := a.converter().FindDuplicates(files.source, files.target)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d duplicate seat cards among %d, written to %s\n",
				result.Stats.Duplicates, result.Stats.RowsRead, result.Target)
			return nil
		},
	}

	files.register(cmd)
	return cmd
}
