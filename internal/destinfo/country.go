package destinfo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// CountryInfo is the country-level fact sheet for a destination.
type CountryInfo struct {
	Name           string
	Region         string
	Capital        string
	Languages      []string // sorted for stable display
	Population     int64
	AreaKM2        float64
	CallingCode    string
	EmergencyPhone string

	CurrencyCode   string
	CurrencyName   string
	CurrencySymbol string
}

// cityToCountry resolves common city destinations to their country, since
// the country API only answers country names. Unlisted destinations are
// tried as-is — they may already be country names.
var cityToCountry = map[string]string{
	"paris":         "france",
	"london":        "united kingdom",
	"tokyo":         "japan",
	"new york":      "united states",
	"dubai":         "united arab emirates",
	"sydney":        "australia",
	"bangkok":       "thailand",
	"barcelona":     "spain",
	"rome":          "italy",
	"amsterdam":     "netherlands",
	"berlin":        "germany",
	"moscow":        "russia",
	"istanbul":      "turkey",
	"delhi":         "india",
	"singapore":     "singapore",
	"hong kong":     "hong kong",
	"cairo":         "egypt",
	"mexico city":   "mexico",
	"toronto":       "canada",
	"vancouver":     "canada",
	"los angeles":   "united states",
	"san francisco": "united states",
	"chicago":       "united states",
	"miami":         "united states",
	"vegas":         "united states",
	"las vegas":     "united states",
}

// emergencyByRegion is a heuristic: the common emergency number for each
// world region, shown when no per-country data is available.
var emergencyByRegion = map[string]string{
	"Europe":   "112",
	"Americas": "911",
	"Asia":     "999 or 112",
	"Africa":   "112 or 999",
	"Oceania":  "000 or 112",
}

// Country looks up the country fact sheet for a destination. City names in
// the built-in table are resolved to their country first.
func (c *Client) Country(ctx context.Context, destination string) (CountryInfo, error) {
	search := strings.ToLower(strings.TrimSpace(destination))
	if country, ok := cityToCountry[search]; ok {
		search = country
	}

	u := fmt.Sprintf("%s/v3.1/name/%s", c.config.CountriesBaseURL, url.PathEscape(search))

	var payload []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		Region     string            `json:"region"`
		Capital    []string          `json:"capital"`
		Languages  map[string]string `json:"languages"`
		Population int64             `json:"population"`
		Area       float64           `json:"area"`
		IDD        struct {
			Root     string   `json:"root"`
			Suffixes []string `json:"suffixes"`
		} `json:"idd"`
		Currencies map[string]struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"currencies"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return CountryInfo{}, fmt.Errorf("destinfo.Client.Country: %w", err)
	}
	if len(payload) == 0 {
		return CountryInfo{}, fmt.Errorf("destinfo.Client.Country: %q: %w", destination, ErrUnavailable)
	}

	country := payload[0]

	info := CountryInfo{
		Name:       country.Name.Common,
		Region:     country.Region,
		Population: country.Population,
		AreaKM2:    country.Area,
	}
	if len(country.Capital) > 0 {
		info.Capital = country.Capital[0]
	}
	for _, lang := range country.Languages {
		info.Languages = append(info.Languages, lang)
	}
	sort.Strings(info.Languages)

	info.CallingCode = country.IDD.Root
	if len(country.IDD.Suffixes) > 0 {
		info.CallingCode += country.IDD.Suffixes[0]
	}

	info.EmergencyPhone = emergencyByRegion[country.Region]
	if info.EmergencyPhone == "" {
		info.EmergencyPhone = "112 or 911"
	}

	for code, cur := range country.Currencies {
		// restcountries lists at most a handful; take the first by code
		// order for determinism.
		if info.CurrencyCode == "" || code < info.CurrencyCode {
			info.CurrencyCode = code
			info.CurrencyName = cur.Name
			info.CurrencySymbol = cur.Symbol
		}
	}
	if info.CurrencySymbol == "" {
		info.CurrencySymbol = info.CurrencyCode
	}

	return info, nil
}
