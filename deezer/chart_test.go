package deezer

import (
	"context"
	"errors"
	"testing"
)

const chartJSON = `{
	"tracks": {"data": [
		{
			"id": 3135556,
			"title": "Around the World",
			"title_short": "Around the World",
			"title_version": "",
			"link": "https://www.deezer.com/track/3135556",
			"duration": 428,
			"rank": 836071,
			"explicit_lyrics": false,
			"preview": "https://cdns-preview-7.dzcdn.net/stream/a.mp3",
			"position": 1,
			"artist": {
				"id": 27,
				"name": "Daft Punk",
				"link": "https://www.deezer.com/artist/27",
				"picture": "https://api.deezer.com/artist/27/image",
				"picture_small": "s", "picture_medium": "m", "picture_big": "b", "picture_xl": "xl",
				"radio": true
			},
			"album": {
				"id": 302127,
				"title": "Discovery",
				"cover": "https://api.deezer.com/album/302127/image",
				"cover_small": "s", "cover_medium": "m", "cover_big": "b", "cover_xl": "xl"
			}
		}
	]},
	"albums": {"data": [
		{
			"id": 302127,
			"title": "Discovery",
			"cover": "https://api.deezer.com/album/302127/image",
			"cover_small": "s", "cover_medium": "m", "cover_big": "b", "cover_xl": "xl",
			"record_type": "album",
			"explicit_lyrics": false,
			"position": 1,
			"artist": {
				"id": 27,
				"name": "Daft Punk",
				"link": "https://www.deezer.com/artist/27",
				"picture": "p", "picture_small": "s", "picture_medium": "m", "picture_big": "b", "picture_xl": "xl",
				"radio": true
			}
		}
	]},
	"artists": {"data": [
		{
			"id": 27,
			"name": "Daft Punk",
			"link": "https://www.deezer.com/artist/27",
			"picture": "p", "picture_small": "s", "picture_medium": "m", "picture_big": "b", "picture_xl": "xl",
			"radio": true,
			"position": 1
		}
	]},
	"playlists": {"data": [
		{
			"id": 908622995,
			"title": "Electro Hits",
			"public": true,
			"link": "https://www.deezer.com/playlist/908622995",
			"picture": "p", "picture_small": "s", "picture_medium": "m", "picture_big": "b", "picture_xl": "xl",
			"user": {"id": 2529, "name": "playlists-hits"}
		}
	]}
}`

func TestGetChart(t *testing.T) {
	c := newTestClient(t, serveJSON(chartJSON))

	chart, err := c.GetChart(context.Background())
	if err != nil {
		t.Fatalf("GetChart error: %v", err)
	}

	if len(chart.Tracks) != 1 || chart.Tracks[0].ID != 3135556 {
		t.Errorf("Tracks = %+v", chart.Tracks)
	}
	if chart.Tracks[0].Position != 1 {
		t.Errorf("Tracks[0].Position = %d, want 1", chart.Tracks[0].Position)
	}
	if len(chart.Albums) != 1 || chart.Albums[0].Artist.ID != 27 {
		t.Errorf("Albums = %+v", chart.Albums)
	}
	if len(chart.Artists) != 1 || chart.Artists[0].Name != "Daft Punk" {
		t.Errorf("Artists = %+v", chart.Artists)
	}
	if len(chart.Playlists) != 1 || chart.Playlists[0].User.ID != 2529 {
		t.Errorf("Playlists = %+v", chart.Playlists)
	}
}

func TestGetChart_StrictFailure(t *testing.T) {
	// One malformed track id fails the whole chart; the strict
	// decoder never yields a partial sequence.
	body := `{
		"tracks": {"data": [{"id": "corrupt"}]},
		"albums": {"data": []},
		"artists": {"data": []},
		"playlists": {"data": []}
	}`
	c := newTestClient(t, serveJSON(body))

	_, err := c.GetChart(context.Background())

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
}
