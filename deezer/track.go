package deezer

import (
	"context"
	"fmt"
)

// Track contains all the information the API exposes for a track.
type Track struct {
	ID             int64   `json:"id"`
	Readable       bool    `json:"readable"` // playable for the current user
	Title          string  `json:"title"`
	TitleShort     string  `json:"title_short"`
	TitleVersion   string  `json:"title_version"`
	Unseen         *bool   `json:"unseen"` // only present on flow/feed tracks
	ISRC           string  `json:"isrc"`
	Link           string  `json:"link"`
	ShareLink      string  `json:"share"`
	Duration       int     `json:"duration"` // seconds
	TrackPosition  int     `json:"track_position"`
	DiskNumber     int     `json:"disk_number"`
	Rank           int     `json:"rank"`
	ReleaseDate    string  `json:"release_date"`
	ExplicitLyrics bool    `json:"explicit_lyrics"`
	Preview        string  `json:"preview"` // 30 second preview URL
	BPM            float64 `json:"bpm"`
	Gain           float64 `json:"gain"`

	// Countries where the track is available.
	AvailableCountries []string `json:"available_countries"`

	// Id of an alternative readable track when this one is not
	// readable; nil otherwise.
	AlternativeID *int64 `json:"alternative"`

	Contributors []ContributorArtist `json:"contributors"`
	Artist       TrackArtist         `json:"artist"`
	Album        TrackAlbum          `json:"album"`
}

// TrackArtist is the shortened artist embedded in a Track. Use GetFull
// for the complete Artist record.
type TrackArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	ShareLink     string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	AlbumCount    *int   `json:"nb_album"` // not always sent
	FanCount      *int   `json:"nb_fan"`   // not always sent
	HasRadio      bool   `json:"radio"`
	Tracklist     string `json:"tracklist"`
}

// GetFull fetches the complete Artist this reference points at.
func (a TrackArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// TrackAlbum is the shortened album embedded in a Track. Use GetFull
// for the complete Album record.
type TrackAlbum struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Cover       string `json:"cover"`
	CoverSmall  string `json:"cover_small"`
	CoverMedium string `json:"cover_medium"`
	CoverBig    string `json:"cover_big"`
	CoverXL     string `json:"cover_xl"`
	ReleaseDate string `json:"release_date"`
}

// GetFull fetches the complete Album this reference points at.
func (a TrackAlbum) GetFull(ctx context.Context, c *Client) (*Album, error) {
	return c.GetAlbum(ctx, a.ID)
}

// GetTrack fetches the track with the given id.
func (c *Client) GetTrack(ctx context.Context, id int64) (*Track, error) {
	return fetch[Track](ctx, c, fmt.Sprintf("/track/%d", id))
}

// GetTrack fetches a track with a one-off client. Use Client when
// making many requests.
func GetTrack(ctx context.Context, id int64) (*Track, error) {
	return New().GetTrack(ctx, id)
}
