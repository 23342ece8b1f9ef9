package deezer

import (
	"context"
	"fmt"
)

// Editorial contains all the information the API exposes for an
// editorial selection.
type Editorial struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
}

// GetEditorial fetches the editorial with the given id.
func (c *Client) GetEditorial(ctx context.Context, id int64) (*Editorial, error) {
	return fetch[Editorial](ctx, c, fmt.Sprintf("/editorial/%d", id))
}

// GetEditorial fetches an editorial with a one-off client. Use Client
// when making many requests.
func GetEditorial(ctx context.Context, id int64) (*Editorial, error) {
	return New().GetEditorial(ctx, id)
}
