package deezer

import (
	"context"
	"fmt"
)

// Album contains all the information the API exposes for an album.
type Album struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	UPC         string `json:"upc"`
	Link        string `json:"link"`
	ShareLink   string `json:"share"`
	Cover       string `json:"cover"`
	CoverSmall  string `json:"cover_small"`
	CoverMedium string `json:"cover_medium"`
	CoverBig    string `json:"cover_big"`
	CoverXL     string `json:"cover_xl"`

	// Primary genre id. The API reports "no primary genre" as -1;
	// GetAlbum clears that sentinel so a missing genre is nil here.
	GenreID *int64 `json:"genre_id"`

	Genres      SkipList[AlbumGenre] `json:"genres"`
	Label       string               `json:"label"`
	TrackCount  int                  `json:"nb_tracks"`
	Duration    int                  `json:"duration"` // seconds
	Fans        int                  `json:"fans"`
	Rating      int                  `json:"rating"`
	ReleaseDate string               `json:"release_date"`
	RecordType  string               `json:"record_type"` // EP, ALBUM, ...
	Available   bool                 `json:"available"`

	// Alternative album when this one is unavailable. Owned by this
	// record; acquired fresh from the same decode, never back-linked.
	Alternative *Album `json:"alternative"`

	Tracklist      string               `json:"tracklist"`
	ExplicitLyrics bool                 `json:"explicit_lyrics"`
	Contributors   []ContributorArtist  `json:"contributors"`
	Artist         AlbumArtist          `json:"artist"`
	Tracks         SkipList[AlbumTrack] `json:"tracks"`
}

// normalize clears the API's -1 "no primary genre" sentinel, through
// the alternative-album chain.
func (a *Album) normalize() {
	if a.GenreID != nil && *a.GenreID == -1 {
		a.GenreID = nil
	}
	if a.Alternative != nil {
		a.Alternative.normalize()
	}
}

// AlbumArtist is the shortened artist embedded in an Album. Use
// GetFull for the complete Artist record.
type AlbumArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
}

// GetFull fetches the complete Artist this reference points at.
func (a AlbumArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// AlbumTrackArtist is the minimal artist embedded in an AlbumTrack.
// Use GetFull for the complete Artist record.
type AlbumTrackArtist struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Tracklist string `json:"tracklist"`
}

// GetFull fetches the complete Artist this reference points at.
func (a AlbumTrackArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// AlbumTrack is the shortened track listed on an Album. Use GetFull
// for the complete Track record.
type AlbumTrack struct {
	ID             int64            `json:"id"`
	Readable       bool             `json:"readable"`
	Title          string           `json:"title"`
	TitleShort     string           `json:"title_short"`
	TitleVersion   string           `json:"title_version"`
	Link           string           `json:"link"`
	Duration       int              `json:"duration"` // seconds
	Rank           int              `json:"rank"`
	ExplicitLyrics bool             `json:"explicit_lyrics"`
	Preview        string           `json:"preview"`
	Artist         AlbumTrackArtist `json:"artist"`
}

// GetFull fetches the complete Track this reference points at.
func (t AlbumTrack) GetFull(ctx context.Context, c *Client) (*Track, error) {
	return c.GetTrack(ctx, t.ID)
}

// AlbumGenre is the shortened genre listed on an Album. Use GetFull
// for the complete Genre record.
type AlbumGenre struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GetFull fetches the complete Genre this reference points at.
func (g AlbumGenre) GetFull(ctx context.Context, c *Client) (*Genre, error) {
	return c.GetGenre(ctx, g.ID)
}

// GetAlbum fetches the album with the given id.
func (c *Client) GetAlbum(ctx context.Context, id int64) (*Album, error) {
	a, err := fetch[Album](ctx, c, fmt.Sprintf("/album/%d", id))
	if err != nil {
		return nil, err
	}
	a.normalize()
	return a, nil
}

// GetAlbum fetches an album with a one-off client. Use Client when
// making many requests.
func GetAlbum(ctx context.Context, id int64) (*Album, error) {
	return New().GetAlbum(ctx, id)
}
