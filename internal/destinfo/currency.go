package destinfo

import (
	"context"
	"fmt"
)

// ExchangeRate is a USD→local conversion rate.
type ExchangeRate struct {
	Code string
	Rate float64
}

// USDRate fetches the USD→code conversion rate. On any failure the rate
// degrades to 1 so the currency section still shows the currency, just
// without a meaningful conversion.
func (c *Client) USDRate(ctx context.Context, code string) ExchangeRate {
	u := fmt.Sprintf("%s/convert?from=USD&to=%s", c.config.CurrencyBaseURL, code)

	var payload struct {
		Success bool    `json:"success"`
		Result  float64 `json:"result"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil || !payload.Success || payload.Result == 0 {
		return ExchangeRate{Code: code, Rate: 1}
	}
	return ExchangeRate{Code: code, Rate: payload.Result}
}
