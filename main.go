// =============================================================================
// Seatcard Sorter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Seatcard Sorter CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   seatcard convert   - Turn a ticketing export into sorted seat cards
//   seatcard resort    - Re-sort an edited seat-card file
//   seatcard dupes     - List seat cards that share a seat
//   seatcard version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : core logic (CSV codec, location resolver, converter)
//   - pkg/           : shared path utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/seatcard-sorter/cmd"
)

func main() {
	cmd.Execute()
}
