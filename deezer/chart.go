package deezer

import "context"

// Chart holds the current top tracks, albums, artists and playlists.
// All four collections decode strictly: a malformed entry anywhere
// fails the whole chart.
type Chart struct {
	Tracks    List[ChartTrack]    `json:"tracks"`
	Albums    List[ChartAlbum]    `json:"albums"`
	Artists   List[ChartArtist]   `json:"artists"`
	Playlists List[ChartPlaylist] `json:"playlists"`
}

// ChartTrack is the shortened track listed in a Chart. Use GetFull for
// the complete Track record.
type ChartTrack struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	TitleShort     string           `json:"title_short"`
	TitleVersion   string           `json:"title_version"`
	Link           string           `json:"link"`
	Duration       int              `json:"duration"` // seconds
	Rank           int              `json:"rank"`
	ExplicitLyrics bool             `json:"explicit_lyrics"`
	Preview        string           `json:"preview"`
	Position       int              `json:"position"` // chart position
	Artist         ChartTrackArtist `json:"artist"`
	Album          ChartTrackAlbum  `json:"album"`
}

// GetFull fetches the complete Track this reference points at.
func (t ChartTrack) GetFull(ctx context.Context, c *Client) (*Track, error) {
	return c.GetTrack(ctx, t.ID)
}

// ChartTrackArtist is the shortened artist embedded in a ChartTrack.
// Use GetFull for the complete Artist record.
type ChartTrackArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	HasRadio      bool   `json:"radio"`
}

// GetFull fetches the complete Artist this reference points at.
func (a ChartTrackArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// ChartTrackAlbum is the shortened album embedded in a ChartTrack. Use
// GetFull for the complete Album record.
type ChartTrackAlbum struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Cover       string `json:"cover"`
	CoverSmall  string `json:"cover_small"`
	CoverMedium string `json:"cover_medium"`
	CoverBig    string `json:"cover_big"`
	CoverXL     string `json:"cover_xl"`
}

// GetFull fetches the complete Album this reference points at.
func (a ChartTrackAlbum) GetFull(ctx context.Context, c *Client) (*Album, error) {
	return c.GetAlbum(ctx, a.ID)
}

// ChartAlbum is the shortened album listed in a Chart. Use GetFull for
// the complete Album record.
type ChartAlbum struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Cover          string           `json:"cover"`
	CoverSmall     string           `json:"cover_small"`
	CoverMedium    string           `json:"cover_medium"`
	CoverBig       string           `json:"cover_big"`
	CoverXL        string           `json:"cover_xl"`
	RecordType     string           `json:"record_type"`
	ExplicitLyrics bool             `json:"explicit_lyrics"`
	Position       int              `json:"position"` // chart position
	Artist         ChartAlbumArtist `json:"artist"`
}

// GetFull fetches the complete Album this reference points at.
func (a ChartAlbum) GetFull(ctx context.Context, c *Client) (*Album, error) {
	return c.GetAlbum(ctx, a.ID)
}

// ChartAlbumArtist is the shortened artist embedded in a ChartAlbum.
// Use GetFull for the complete Artist record.
type ChartAlbumArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	HasRadio      bool   `json:"radio"`
}

// GetFull fetches the complete Artist this reference points at.
func (a ChartAlbumArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// ChartArtist is the shortened artist listed in a Chart. Use GetFull
// for the complete Artist record.
type ChartArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	HasRadio      bool   `json:"radio"`
	Position      int    `json:"position"` // chart position
}

// GetFull fetches the complete Artist this reference points at.
func (a ChartArtist) GetFull(ctx context.Context, c *Client) (*Artist, error) {
	return c.GetArtist(ctx, a.ID)
}

// ChartPlaylist is the shortened playlist listed in a Chart. Use
// GetFull for the complete Playlist record.
type ChartPlaylist struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Public        bool              `json:"public"`
	Link          string            `json:"link"`
	Picture       string            `json:"picture"`
	PictureSmall  string            `json:"picture_small"`
	PictureMedium string            `json:"picture_medium"`
	PictureBig    string            `json:"picture_big"`
	PictureXL     string            `json:"picture_xl"`
	Position      int               `json:"position"` // chart position
	User          ChartPlaylistUser `json:"user"`
}

// GetFull fetches the complete Playlist this reference points at.
func (p ChartPlaylist) GetFull(ctx context.Context, c *Client) (*Playlist, error) {
	return c.GetPlaylist(ctx, p.ID)
}

// ChartPlaylistUser is the minimal user embedded in a ChartPlaylist.
// Use GetFull for the complete User record.
type ChartPlaylistUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GetFull fetches the complete User this reference points at.
func (u ChartPlaylistUser) GetFull(ctx context.Context, c *Client) (*User, error) {
	return c.GetUser(ctx, u.ID)
}

// GetChart fetches the current global chart.
func (c *Client) GetChart(ctx context.Context) (*Chart, error) {
	return fetch[Chart](ctx, c, "/chart")
}

// GetChart fetches the chart with a one-off client. Use Client when
// making many requests.
func GetChart(ctx context.Context) (*Chart, error) {
	return New().GetChart(ctx)
}
