// =============================================================================
// Seatcard Sorter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (seatcard)
//   ├── convertCmd (seatcard convert)
//   ├── resortCmd  (seatcard resort)
//   ├── dupesCmd   (seatcard dupes)
//   └── versionCmd (seatcard version)
//
// Before any subcommand runs, the root command loads the configuration and
// builds a logger tagged with a fresh run_id.
//
// EXIT CODES:
//   0 success, 1 other failure, 2 malformed CSV, 3 data the converter cannot
//   interpret, 4 bad flags or configuration
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seatcard-sorter/internal/config"
	"github.com/ginjaninja78/seatcard-sorter/internal/converter"
	"github.com/ginjaninja78/seatcard-sorter/internal/logging"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	// cfgFile is the --config flag; empty selects config.DefaultPath.
	cfgFile string

	// verbose forces debug logging.
	verbose bool

	cfg    *config.Config
	logger *logrus.Entry
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "seatcard",
		Short: "Seatcard Sorter - Turn ticketing exports into print-ordered seat cards",
		Long: `Seatcard Sorter reads a subscriber ticketing export, resolves each seat's
printed location, picks one seat card per customer, tags it with the
customer's mailing version and writes the cards in the order they are
walked through the house.

Example Usage:
  seatcard convert --source oct.csv                     # writes oct.sorted.csv
  seatcard convert --source oct.csv --versions lists.txt --mapping inserts.csv
  seatcard resort --source edited.csv --target final.csv
  seatcard dupes --source final.csv --target dupes.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(
		&a.cfgFile,
		"config",
		"",
		"Path to the configuration file (default is "+config.DefaultPath+" if present)",
	)
	cmd.PersistentFlags().BoolVarP(
		&a.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newResortCmd(a))
	cmd.AddCommand(newDupesCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads the configuration and sets up logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return withCode(exitUsage, err)
	}

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}

	a.cfg = cfg
	a.logger = logging.New(level, cfg.LogFormat, cmd.ErrOrStderr()).WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})
	return nil
}

// converter builds a Converter from the loaded configuration.
func (a *app) converter() *converter.Converter {
	return converter.New(converter.Options{
		VersionNames: a.cfg.VersionNames,
		DateLayouts:  a.cfg.DateLayouts,
		LeapYear:     a.cfg.LeapYear,
		WriteBOM:     a.cfg.WriteBOM,
	}, a.logger)
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI and exits with the code matching the failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
