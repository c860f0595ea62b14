// Package cli is the thin interface layer between the terminal and the
// services: it parses flags, calls a service method, and prints the result.
// No business logic lives here, mirroring how an HTTP handler layer would
// stay out of the services' way.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Nazish-kiran/travel-planner/internal/destinfo"
	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/internal/service"
)

// Exit codes: 0 success, 1 operation error, 2 usage error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// App wires the command surface to the services.
type App struct {
	Trips  *service.TripService
	Lookup *destinfo.Service
	Out    io.Writer
	ErrOut io.Writer
}

// Run dispatches one command line (without the program name) and returns
// the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "new":
		return a.report(a.cmdNew(ctx, rest))
	case "show":
		return a.report(a.cmdShow())
	case "delete":
		return a.report(a.cmdDelete(ctx, rest))
	case "budget":
		return a.report(a.cmdBudget(ctx, rest))
	case "activity":
		return a.report(a.cmdActivity(ctx, rest))
	case "stay":
		return a.report(a.cmdStay(ctx, rest))
	case "transport":
		return a.report(a.cmdTransport(ctx, rest))
	case "pack":
		return a.report(a.cmdPack(ctx, rest))
	case "note":
		return a.report(a.cmdNote(ctx, rest))
	case "doc":
		return a.report(a.cmdDoc(ctx, rest))
	case "export":
		return a.report(a.cmdExport(rest))
	case "info":
		return a.report(a.cmdInfo(ctx))
	case "help", "-h", "--help":
		a.usage()
		return exitOK
	}

	fmt.Fprintf(a.ErrOut, "unknown command %q\n\n", cmd)
	a.usage()
	return exitUsage
}

// report maps a command error to an exit code and a terminal message.
// Validation problems and "no trip" are user mistakes, not failures worth a
// stack of wrapped context, so only the root message is shown.
func (a *App) report(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, domain.ErrNoTrip):
		fmt.Fprintln(a.ErrOut, "no active trip — create one with: tripplan new")
		return exitError
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(a.ErrOut, "error:", err)
		return exitError
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintln(a.ErrOut, "error:", err)
		return exitError
	}
	fmt.Fprintln(a.ErrOut, "error:", err)
	return exitError
}

// errUsage marks flag-parsing and missing-subcommand problems.
var errUsage = errors.New("usage error")

func (a *App) usage() {
	fmt.Fprint(a.ErrOut, `tripplan — plan one trip at a time

Commands:
  new        create a trip (discards any existing one)
  show       print the trip, budget summary, and analytics
  delete     discard the trip and its persisted state
  budget     show, set, or clear the budget limit
  activity   add or remove a day's activities
  stay       set or remove the accommodation
  transport  add or remove transportation
  pack       manage the packing list
  note       manage categorized notes
  doc        manage document checklists
  export     write the itinerary (text, html, pdf, xlsx)
  info       destination weather, country, and currency info

Run "tripplan <command> -h" for the command's flags.
`)
}

// parseDate parses the "2006-01-02" date format used by every date flag.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q (want YYYY-MM-DD)", domain.ErrValidation, s)
	}
	return t, nil
}
