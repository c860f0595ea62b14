package destinfo

import (
	"context"
	"fmt"
	"math"
)

// WeatherReport is the current conditions at a place.
type WeatherReport struct {
	TempC       int // rounded
	Humidity    int // percent
	WindKMH     int // rounded
	WeatherCode int // WMO interpretation code
	Description string
}

// CurrentWeather fetches the current conditions for the given coordinates.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (WeatherReport, error) {
	u := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m&temperature_unit=celsius&timezone=auto",
		c.config.WeatherBaseURL, lat, lon)

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    int     `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return WeatherReport{}, fmt.Errorf("destinfo.Client.CurrentWeather: %w", err)
	}

	code := payload.Current.WeatherCode
	return WeatherReport{
		TempC:       int(math.Round(payload.Current.Temperature)),
		Humidity:    payload.Current.Humidity,
		WindKMH:     int(math.Round(payload.Current.WindSpeed)),
		WeatherCode: code,
		Description: describeWeatherCode(code),
	}, nil
}

// describeWeatherCode maps a WMO weather interpretation code to a short
// human-readable description.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code == 1 || code == 2:
		return "Partly Cloudy"
	case code == 3:
		return "Overcast"
	case code >= 45 && code <= 48:
		return "Foggy"
	case code >= 51 && code <= 67:
		return "Drizzle"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain"
	case code >= 85 && code <= 86:
		return "Snow Showers"
	case code >= 90 && code <= 99:
		return "Thunderstorm"
	}
	return "Unknown"
}
