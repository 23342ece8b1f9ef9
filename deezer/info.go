package deezer

import "context"

// Info describes the API's availability in the caller's country.
type Info struct {
	CountryISO string      `json:"country_iso"`
	Country    string      `json:"country"`
	Open       bool        `json:"open"`
	Offers     List[Offer] `json:"offers"` // sent as a bare array, not an envelope
}

// Offer is one subscription offer available in the current country.
type Offer struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	DisplayedAmount string `json:"displayed_amount"`
	TC              string `json:"tc"`
	TCHTML          string `json:"tc_html"`
	TCText          string `json:"tc_txt"`
	TryAndBuy       int    `json:"try_and_buy"`
}

// GetInfo fetches API availability info for the current country.
func (c *Client) GetInfo(ctx context.Context) (*Info, error) {
	return fetch[Info](ctx, c, "/infos")
}

// GetInfo fetches info with a one-off client. Use Client when making
// many requests.
func GetInfo(ctx context.Context) (*Info, error) {
	return New().GetInfo(ctx)
}
