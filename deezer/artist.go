package deezer

import (
	"context"
	"fmt"
)

// Artist contains all the information the API exposes for an artist.
type Artist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	ShareLink     string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	AlbumCount    int    `json:"nb_album"`
	FanCount      int    `json:"nb_fan"`
	HasRadio      bool   `json:"radio"`
	Tracklist     string `json:"tracklist"`
}

// ContributorArtist is the shortened artist listed as a contributor on
// a Track or Album. Use GetFull for the complete Artist record.
type ContributorArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	ShareLink     string `json:"share"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	HasRadio      bool   `json:"radio"`
	Tracklist     string `json:"tracklist"`
}

// GetFull fetches the complete Artist this reference points at.
func (a ContributorArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// GetArtist fetches the artist with the given id.
func (c *Client) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	return fetch[Artist](ctx, c, fmt.Sprintf("/artist/%d", id))
}

// GetArtist fetches an artist with a one-off client. Use Client when
// making many requests.
func GetArtist(ctx context.Context, id int64) (*Artist, error) {
	return New().GetArtist(ctx, id)
}
