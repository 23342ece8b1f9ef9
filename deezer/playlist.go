package deezer

import (
	"context"
	"fmt"
)

// Playlist contains all the information the API exposes for a
// playlist.
type Playlist struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      int    `json:"duration"` // seconds
	Public        bool   `json:"public"`
	IsLovedTrack  bool   `json:"is_loved_track"`
	Collaborative bool   `json:"collaborative"`
	Rating        *int   `json:"rating"` // not always sent
	TrackCount    int    `json:"nb_tracks"`
	UnseenCount   *int   `json:"unseen_track_count"` // not always sent
	Fans          int    `json:"fans"`
	Link          string `json:"link"`
	ShareLink     string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	Checksum      string `json:"checksum"` // changes when the track list does

	Creator PlaylistUser            `json:"creator"`
	Tracks  SkipList[PlaylistTrack] `json:"tracks"`
}

// PlaylistUser is the minimal user embedded as a playlist creator. Use
// GetFull for the complete User record.
type PlaylistUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GetFull fetches the complete User this reference points at.
func (u PlaylistUser) GetFull(ctx context.Context, c *Client) (*User, error) {
	return c.GetUser(ctx, u.ID)
}

// PlaylistTrack is the shortened track listed on a Playlist. Use
// GetFull for the complete Track record.
type PlaylistTrack struct {
	ID             int64               `json:"id"`
	Readable       bool                `json:"readable"`
	Title          string              `json:"title"`
	TitleShort     string              `json:"title_short"`
	TitleVersion   string              `json:"title_version"`
	Unseen         bool                `json:"unseen"`
	Link           string              `json:"link"`
	Duration       int                 `json:"duration"` // seconds
	Rank           int                 `json:"rank"`
	ExplicitLyrics bool                `json:"explicit_lyrics"`
	Preview        string              `json:"preview"`
	AddedAt        int64               `json:"time_add"` // unix timestamp
	Artist         PlaylistTrackArtist `json:"artist"`
	Album          PlaylistTrackAlbum  `json:"album"`
}

// GetFull fetches the complete Track this reference points at.
func (t PlaylistTrack) GetFull(ctx context.Context, c *Client) (*Track, error) {
	return c.GetTrack(ctx, t.ID)
}

// PlaylistTrackArtist is the minimal artist embedded in a
// PlaylistTrack. Use GetFull for the complete Artist record.
type PlaylistTrackArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// GetFull fetches the complete Artist this reference points at.
func (a PlaylistTrackArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// PlaylistTrackAlbum is the shortened album embedded in a
// PlaylistTrack. Use GetFull for the complete Album record.
type PlaylistTrackAlbum struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Cover       string `json:"cover"`
	CoverSmall  string `json:"cover_small"`
	CoverMedium string `json:"cover_medium"`
	CoverBig    string `json:"cover_big"`
	CoverXL     string `json:"cover_xl"`
}

// GetFull fetches the complete Album this reference points at.
func (a PlaylistTrackAlbum) GetFull(ctx context.Context, c *Client) (*Album, error) {
	return c.GetAlbum(ctx, a.ID)
}

// GetPlaylist fetches the playlist with the given id.
func (c *Client) GetPlaylist(ctx context.Context, id int64) (*Playlist, error) {
	return fetch[Playlist](ctx, c, fmt.Sprintf("/playlist/%d", id))
}

// GetPlaylist fetches a playlist with a one-off client. Use Client
// when making many requests.
func GetPlaylist(ctx context.Context, id int64) (*Playlist, error) {
	return New().GetPlaylist(ctx, id)
}
