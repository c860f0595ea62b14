package destinfo

import (
	"context"
	"fmt"
	"time"
)

// PrayerSchedule holds the five daily prayer times for one date.
type PrayerSchedule struct {
	Fajr    string
	Dhuhr   string
	Asr     string
	Maghrib string
	Isha    string
}

// PrayerTimes fetches the prayer schedule for the given coordinates and
// date (Islamic Society of North America calculation method).
func (c *Client) PrayerTimes(ctx context.Context, lat, lon float64, date time.Time) (PrayerSchedule, error) {
	u := fmt.Sprintf("%s/v1/calendar/%d/%d?latitude=%f&longitude=%f&method=2",
		c.config.PrayerBaseURL, date.Year(), int(date.Month()), lat, lon)

	var payload struct {
		Data []struct {
			Timings struct {
				Fajr    string `json:"Fajr"`
				Dhuhr   string `json:"Dhuhr"`
				Asr     string `json:"Asr"`
				Maghrib string `json:"Maghrib"`
				Isha    string `json:"Isha"`
			} `json:"timings"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return PrayerSchedule{}, fmt.Errorf("destinfo.Client.PrayerTimes: %w", err)
	}

	// The calendar endpoint returns the whole month; pick the entry for the
	// requested day of month.
	idx := date.Day() - 1
	if idx < 0 || idx >= len(payload.Data) {
		return PrayerSchedule{}, fmt.Errorf("destinfo.Client.PrayerTimes: %w", ErrUnavailable)
	}

	t := payload.Data[idx].Timings
	return PrayerSchedule{
		Fajr:    t.Fajr,
		Dhuhr:   t.Dhuhr,
		Asr:     t.Asr,
		Maghrib: t.Maghrib,
		Isha:    t.Isha,
	}, nil
}
