package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/internal/export"
)

func (a *App) cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.ErrOut)
	format := fs.String("format", "text", "output format: text, html, pdf, or xlsx")
	outDir := fs.String("out", ".", "directory to write the file into")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	f := export.Format(*format)
	if !f.Valid() {
		return fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, *format)
	}

	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}

	data, err := export.Render(trip, f)
	if err != nil {
		return err
	}

	path := filepath.Join(*outDir, export.Filename(trip, f))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintf(a.Out, "wrote %s\n", path)
	return nil
}
