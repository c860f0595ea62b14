package cli

import (
	"context"
	"fmt"
)

// cmdInfo prints the destination widgets: weather, timezone, country facts,
// currency, and prayer times. Every section degrades independently to
// "unavailable" — a dead API never hides the others.
func (a *App) cmdInfo(ctx context.Context) error {
	trip, err := a.Trips.Get()
	if err != nil {
		return err
	}

	info, err := a.Lookup.Lookup(ctx, trip.Destination)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "destination: %s\n\n", trip.Destination)

	if w := info.Weather; w != nil {
		fmt.Fprintf(a.Out, "weather: %d°C, %s, humidity %d%%, wind %d km/h\n",
			w.TempC, w.Description, w.Humidity, w.WindKMH)
	} else {
		fmt.Fprintln(a.Out, "weather: unavailable")
	}

	if p := info.Place; p != nil && p.Timezone != "" {
		fmt.Fprintf(a.Out, "timezone: %s\n", p.Timezone)
	} else {
		fmt.Fprintln(a.Out, "timezone: unavailable")
	}

	if c := info.Country; c != nil {
		fmt.Fprintf(a.Out, "country: %s (%s), capital %s\n", c.Name, c.Region, c.Capital)
		fmt.Fprintf(a.Out, "population: %d\n", c.Population)
		if len(c.Languages) > 0 {
			fmt.Fprint(a.Out, "languages:")
			for _, lang := range c.Languages {
				fmt.Fprintf(a.Out, " %s", lang)
			}
			fmt.Fprintln(a.Out)
		}
		fmt.Fprintf(a.Out, "calling code: %s, emergency: %s\n", c.CallingCode, c.EmergencyPhone)
		fmt.Fprintf(a.Out, "currency: %s (%s)", c.CurrencyName, c.CurrencyCode)
		if r := info.Rate; r != nil {
			fmt.Fprintf(a.Out, " — 1 USD = %.2f %s", r.Rate, r.Code)
		}
		fmt.Fprintln(a.Out)
	} else {
		fmt.Fprintln(a.Out, "country info: unavailable")
	}

	if p := info.Prayer; p != nil {
		fmt.Fprintf(a.Out, "prayer times: Fajr %s, Dhuhr %s, Asr %s, Maghrib %s, Isha %s\n",
			p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha)
	} else {
		fmt.Fprintln(a.Out, "prayer times: unavailable")
	}

	return nil
}
