package destinfo

import (
	"context"
	"fmt"
	"net/url"
)

// Place is one geocoding result: coordinates plus the country and IANA
// timezone the other lookups key off.
type Place struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// Geocode resolves a free-text destination to its best-match place.
// Returns ErrUnavailable when the geocoder knows no such place.
func (c *Client) Geocode(ctx context.Context, destination string) (Place, error) {
	u := fmt.Sprintf("%s/v1/search?name=%s&count=1&language=en&format=json",
		c.config.GeocodingBaseURL, url.QueryEscape(destination))

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Timezone  string  `json:"timezone"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return Place{}, fmt.Errorf("destinfo.Client.Geocode: %w", err)
	}
	if len(payload.Results) == 0 {
		return Place{}, fmt.Errorf("destinfo.Client.Geocode: %q: %w", destination, ErrUnavailable)
	}

	r := payload.Results[0]
	return Place{
		Name:      r.Name,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
	}, nil
}
