package destinfo

import (
	"context"
	"sync"
	"time"
)

// Info aggregates every widget's result for one destination. A nil field
// means that lookup failed or returned nothing — render it "unavailable"
// and move on; fields never block each other.
type Info struct {
	Destination string
	Place       *Place
	Weather     *WeatherReport
	Country     *CountryInfo
	Prayer      *PrayerSchedule
	Rate        *ExchangeRate
}

// Service runs the destination lookups behind a Watcher: a Lookup for a new
// destination cancels the one still in flight, and a stale result is never
// returned once superseded.
type Service struct {
	client  *Client
	watcher *Watcher
	now     func() time.Time
}

// NewService constructs a lookup Service over the given API client.
func NewService(client *Client) *Service {
	return &Service{client: client, watcher: NewWatcher(), now: time.Now}
}

// Lookup fetches all destination info. The geocode result feeds the
// coordinate-based lookups; the country-based lookups run independently,
// so one failing widget never takes the others down. Returns
// context.Canceled when a newer Lookup superseded this one.
func (s *Service) Lookup(ctx context.Context, destination string) (Info, error) {
	ctx, commit := s.watcher.Begin(ctx)

	info := Info{Destination: destination}

	var wg sync.WaitGroup

	// Coordinate chain: geocode, then weather and prayer times in parallel.
	wg.Add(1)
	go func() {
		defer wg.Done()

		place, err := s.client.Geocode(ctx, destination)
		if err != nil {
			return
		}
		info.Place = &place

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			if w, err := s.client.CurrentWeather(ctx, place.Latitude, place.Longitude); err == nil {
				info.Weather = &w
			}
		}()
		go func() {
			defer inner.Done()
			if p, err := s.client.PrayerTimes(ctx, place.Latitude, place.Longitude, s.now()); err == nil {
				info.Prayer = &p
			}
		}()
		inner.Wait()
	}()

	// Country chain: country facts, then the currency rate.
	wg.Add(1)
	go func() {
		defer wg.Done()

		country, err := s.client.Country(ctx, destination)
		if err != nil {
			return
		}
		info.Country = &country

		if country.CurrencyCode != "" {
			rate := s.client.USDRate(ctx, country.CurrencyCode)
			info.Rate = &rate
		}
	}()

	wg.Wait()

	var out Info
	if !commit(func() { out = info }) {
		return Info{}, context.Canceled
	}
	return out, nil
}
