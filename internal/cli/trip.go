package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

func (a *App) cmdNew(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(a.ErrOut)
	dest := fs.String("dest", "", "destination (required)")
	start := fs.String("start", "", "start date YYYY-MM-DD (required)")
	end := fs.String("end", "", "end date YYYY-MM-DD (required)")
	travelers := fs.Int("travelers", 1, "number of travelers")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	startDate, err := parseDate(*start)
	if err != nil {
		return err
	}
	endDate, err := parseDate(*end)
	if err != nil {
		return err
	}

	trip, err := a.Trips.Create(ctx, *dest, startDate, endDate, *travelers)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "created trip to %s: %d day(s), %d traveler(s)\n",
		trip.Destination, len(trip.Days), trip.Travelers)
	return nil
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(a.ErrOut)
	yes := fs.Bool("yes", false, "confirm deletion")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if !*yes {
		fmt.Fprintln(a.ErrOut, "deleting discards the trip and its saved state; re-run with -yes to confirm")
		return errUsage
	}
	if err := a.Trips.Delete(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "trip deleted")
	return nil
}

func (a *App) cmdBudget(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.printBudget()
	}
	switch args[0] {
	case "set":
		if len(args) < 2 {
			fmt.Fprintln(a.ErrOut, "usage: tripplan budget set <limit>")
			return errUsage
		}
		limit, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%w: budget limit %q is not a number", domain.ErrValidation, args[1])
		}
		if err := a.Trips.SetBudgetLimit(ctx, limit); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "budget limit set to %.2f\n", limit)
		return nil
	case "clear":
		if err := a.Trips.ClearBudgetLimit(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "budget limit cleared")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown budget subcommand %q (want set or clear)\n", args[0])
	return errUsage
}

func (a *App) printBudget() error {
	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}

	report := domain.ClassifyBudget(trip)
	fmt.Fprintf(a.Out, "spent: %.2f\n", report.Spent)
	if report.Status == domain.StatusNone {
		fmt.Fprintln(a.Out, "no budget limit set")
		return nil
	}

	fmt.Fprintf(a.Out, "limit: %.2f\nremaining: %.2f\n", report.Limit, report.Remaining)
	switch report.Status {
	case domain.StatusOver:
		fmt.Fprintf(a.Out, "status: OVER BUDGET by %.2f\n", -report.Remaining)
	case domain.StatusWarning:
		fmt.Fprintln(a.Out, "status: warning — less than 10% of the budget remains")
	default:
		fmt.Fprintln(a.Out, "status: within budget")
	}
	return nil
}

func (a *App) cmdShow() error {
	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s — %s to %s, %d traveler(s)\n\n",
		trip.Destination, trip.StartDate.Format("Jan 2, 2006"),
		trip.EndDate.Format("Jan 2, 2006"), trip.Travelers)

	w := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	for _, day := range trip.Days {
		fmt.Fprintf(w, "Day %d\t%s\t%d activities\t%.2f\n",
			day.Day, trip.DayDate(day.Day).Format("Jan 2"), len(day.Activities), day.Total())
		for _, act := range day.Activities {
			fmt.Fprintf(w, "\t%s\t%s (%s)\t%.2f\t%s\n", act.Time, act.Title, act.Category, act.Cost, act.ID)
		}
	}
	w.Flush()

	fmt.Fprintf(a.Out, "\nactivities total:\t%.2f\n", trip.ActivitiesTotal())
	fmt.Fprintf(a.Out, "accommodation:\t%.2f\n", trip.AccommodationCost())
	fmt.Fprintf(a.Out, "transportation:\t%.2f\n", trip.TransportationTotal())
	fmt.Fprintf(a.Out, "trip total:\t%.2f\n", trip.Total())
	fmt.Fprintf(a.Out, "average per day:\t%.2f\n", trip.AverageDailyCost())

	if stats := domain.BreakdownByCategory(trip); len(stats) > 0 {
		fmt.Fprintln(a.Out, "\nactivities by category:")
		for _, stat := range stats {
			fmt.Fprintf(a.Out, "  %-12s %d (%.2f)\n", stat.Category, stat.Count, stat.Cost)
		}
	}

	if len(trip.PackingList) > 0 {
		fmt.Fprintf(a.Out, "\npacking: %d of %d packed (%d%%)\n",
			trip.PackedCount(), len(trip.PackingList), trip.PackingProgress())
	}
	if completed, total := trip.DocumentProgress(); total > 0 {
		fmt.Fprintf(a.Out, "documents: %d of %d ready\n", completed, total)
	}

	if report := domain.ClassifyBudget(trip); report.Status != domain.StatusNone {
		switch report.Status {
		case domain.StatusOver:
			fmt.Fprintf(a.Out, "\nbudget: OVER by %.2f (limit %.2f)\n", -report.Remaining, report.Limit)
		case domain.StatusWarning:
			fmt.Fprintf(a.Out, "\nbudget: warning — %.2f of %.2f remaining\n", report.Remaining, report.Limit)
		default:
			fmt.Fprintf(a.Out, "\nbudget: %.2f of %.2f remaining\n", report.Remaining, report.Limit)
		}
	}

	return nil
}
