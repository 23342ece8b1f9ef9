package deezer

import (
	"context"
	"fmt"
)

// Radio contains all the information the API exposes for a radio.
type Radio struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ShareLink     string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	Tracklist     string `json:"tracklist"`
}

// GetRadio fetches the radio with the given id.
func (c *Client) GetRadio(ctx context.Context, id int64) (*Radio, error) {
	return fetch[Radio](ctx, c, fmt.Sprintf("/radio/%d", id))
}

// GetRadio fetches a radio with a one-off client. Use Client when
// making many requests.
func GetRadio(ctx context.Context, id int64) (*Radio, error) {
	return New().GetRadio(ctx, id)
}
