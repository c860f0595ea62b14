package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/internal/service"
)

// parseID parses a record ID flag, mapping garbage to a validation error
// instead of a bare uuid parse failure.
func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, s)
	}
	return id, nil
}

func (a *App) cmdActivity(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.ErrOut, "usage: tripplan activity <add|rm> [flags]")
		return errUsage
	}
	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("activity add", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		day := fs.Int("day", 1, "1-based day number")
		title := fs.String("title", "", "activity title (required)")
		timeOfDay := fs.String("time", "", "start time, e.g. 14:30")
		category := fs.String("category", string(domain.CategorySightseeing), "category")
		cost := fs.Float64("cost", 0, "cost (blank = 0)")
		notes := fs.String("notes", "", "free-text notes")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}

		act, err := a.Trips.AddActivity(ctx, *day, service.ActivityInput{
			Title:    *title,
			Time:     *timeOfDay,
			Category: domain.Category(*category),
			Cost:     *cost,
			Notes:    *notes,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "added activity %s to day %d (id %s)\n", act.Title, *day, act.ID)
		return nil

	case "rm":
		fs := flag.NewFlagSet("activity rm", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		day := fs.Int("day", 1, "1-based day number")
		id := fs.String("id", "", "activity id (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		actID, err := parseID(*id)
		if err != nil {
			return err
		}
		if err := a.Trips.RemoveActivity(ctx, *day, actID); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "activity removed")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown activity subcommand %q (want add or rm)\n", args[0])
	return errUsage
}

func (a *App) cmdStay(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.ErrOut, "usage: tripplan stay <set|rm> [flags]")
		return errUsage
	}
	switch args[0] {
	case "set":
		fs := flag.NewFlagSet("stay set", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		name := fs.String("name", "", "hotel/stay name (required)")
		address := fs.String("address", "", "address")
		checkIn := fs.String("checkin", "", "check-in date YYYY-MM-DD")
		checkOut := fs.String("checkout", "", "check-out date YYYY-MM-DD")
		cost := fs.Float64("cost", 0, "total cost")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		err := a.Trips.SetAccommodation(ctx, domain.Accommodation{
			Name:     *name,
			Address:  *address,
			CheckIn:  *checkIn,
			CheckOut: *checkOut,
			Cost:     *cost,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "accommodation set: %s\n", *name)
		return nil

	case "rm":
		if err := a.Trips.RemoveAccommodation(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "accommodation removed")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown stay subcommand %q (want set or rm)\n", args[0])
	return errUsage
}

func (a *App) cmdTransport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.ErrOut, "usage: tripplan transport <add|rm> [flags]")
		return errUsage
	}
	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("transport add", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		transportType := fs.String("type", "", "e.g. Flight, Train (required)")
		details := fs.String("details", "", "booking details")
		cost := fs.Float64("cost", 0, "cost (blank = 0)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		tr, err := a.Trips.AddTransport(ctx, *transportType, *details, *cost)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "added %s (id %s)\n", tr.Type, tr.ID)
		return nil

	case "rm":
		fs := flag.NewFlagSet("transport rm", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		id := fs.String("id", "", "transport id (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		trID, err := parseID(*id)
		if err != nil {
			return err
		}
		if err := a.Trips.RemoveTransport(ctx, trID); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "transport removed")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown transport subcommand %q (want add or rm)\n", args[0])
	return errUsage
}

func (a *App) cmdPack(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.printPacking()
	}
	switch args[0] {
	case "ls":
		return a.printPacking()
	case "add":
		if len(args) < 2 {
			fmt.Fprintln(a.ErrOut, "usage: tripplan pack add <text>")
			return errUsage
		}
		item, err := a.Trips.AddPackingItem(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "added %q (id %s)\n", item.Text, item.ID)
		return nil
	case "toggle":
		if len(args) < 2 {
			fmt.Fprintln(a.ErrOut, "usage: tripplan pack toggle <id>")
			return errUsage
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := a.Trips.TogglePacked(ctx, id); err != nil {
			return err
		}
		return a.printPacking()
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(a.ErrOut, "usage: tripplan pack rm <id>")
			return errUsage
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := a.Trips.RemovePackingItem(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "item removed")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown pack subcommand %q (want ls, add, toggle, or rm)\n", args[0])
	return errUsage
}

func (a *App) printPacking() error {
	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}
	for _, item := range trip.PackingList {
		marker := "[ ]"
		if item.Packed {
			marker = "[x]"
		}
		fmt.Fprintf(a.Out, "%s %s  (%s)\n", marker, item.Text, item.ID)
	}
	fmt.Fprintf(a.Out, "%d of %d packed (%d%%)\n",
		trip.PackedCount(), len(trip.PackingList), trip.PackingProgress())
	return nil
}

func (a *App) cmdNote(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.printNotes()
	}
	switch args[0] {
	case "ls":
		return a.printNotes()
	case "add":
		fs := flag.NewFlagSet("note add", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		category := fs.String("category", domain.NoteCategoryGeneral, "note category")
		content := fs.String("content", "", "note text (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		note, err := a.Trips.AddNote(ctx, *category, *content)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "added %s note (id %s)\n", note.Category, note.ID)
		return nil
	case "edit":
		fs := flag.NewFlagSet("note edit", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		id := fs.String("id", "", "note id (required)")
		content := fs.String("content", "", "new text (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		noteID, err := parseID(*id)
		if err != nil {
			return err
		}
		if err := a.Trips.UpdateNote(ctx, noteID, *content); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "note updated")
		return nil
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(a.ErrOut, "usage: tripplan note rm <id>")
			return errUsage
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := a.Trips.RemoveNote(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "note removed")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown note subcommand %q (want ls, add, edit, or rm)\n", args[0])
	return errUsage
}

func (a *App) printNotes() error {
	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}
	for _, cat := range domain.NoteCategories {
		for _, note := range trip.Notes {
			if note.Category != cat {
				continue
			}
			fmt.Fprintf(a.Out, "[%s] %s  (%s)\n", note.Category, note.Content, note.ID)
		}
	}
	return nil
}

func (a *App) cmdDoc(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.printDocs()
	}
	switch args[0] {
	case "ls":
		return a.printDocs()
	case "add":
		fs := flag.NewFlagSet("doc add", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		category := fs.String("category", "passport", "document category")
		text := fs.String("text", "", "item text (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		item, err := a.Trips.AddDocument(ctx, *category, *text)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "added to %s (id %s)\n", *category, item.ID)
		return nil
	case "toggle":
		fs := flag.NewFlagSet("doc toggle", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		category := fs.String("category", "passport", "document category")
		id := fs.String("id", "", "item id (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		docID, err := parseID(*id)
		if err != nil {
			return err
		}
		if err := a.Trips.ToggleDocument(ctx, *category, docID); err != nil {
			return err
		}
		return a.printDocs()
	case "rm":
		fs := flag.NewFlagSet("doc rm", flag.ContinueOnError)
		fs.SetOutput(a.ErrOut)
		category := fs.String("category", "passport", "document category")
		id := fs.String("id", "", "item id (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		docID, err := parseID(*id)
		if err != nil {
			return err
		}
		if err := a.Trips.RemoveDocument(ctx, *category, docID); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "item removed")
		return nil
	}
	fmt.Fprintf(a.ErrOut, "unknown doc subcommand %q (want ls, add, toggle, or rm)\n", args[0])
	return errUsage
}

func (a *App) printDocs() error {
	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}
	for _, cat := range domain.DocumentCategories {
		items := trip.Documents[cat]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(a.Out, "%s:\n", cat)
		for _, item := range items {
			marker := "[ ]"
			if item.Completed {
				marker = "[x]"
			}
			fmt.Fprintf(a.Out, "  %s %s  (%s)\n", marker, item.Text, item.ID)
		}
	}
	completed, total := trip.DocumentProgress()
	fmt.Fprintf(a.Out, "%d of %d ready\n", completed, total)
	return nil
}
