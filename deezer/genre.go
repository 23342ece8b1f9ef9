package deezer

import (
	"context"
	"fmt"
)

// Genre contains all the information the API exposes for a genre.
type Genre struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
}

// GetGenre fetches the genre with the given id.
func (c *Client) GetGenre(ctx context.Context, id int64) (*Genre, error) {
	return fetch[Genre](ctx, c, fmt.Sprintf("/genre/%d", id))
}

// GetGenre fetches a genre with a one-off client. Use Client when
// making many requests.
func GetGenre(ctx context.Context, id int64) (*Genre, error) {
	return New().GetGenre(ctx, id)
}
