// Command deezmeta fetches a single resource from the Deezer API and
// pretty-prints it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/deezmeta/deezer"
	"github.com/llehouerou/deezmeta/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const usage = `usage: deezmeta <resource> [id]

resources:
  track <id>      fetch a track
  artist <id>     fetch an artist
  album <id>      fetch an album
  genre <id>      fetch a genre
  comment <id>    fetch a comment
  user <id>       fetch a user
  playlist <id>   fetch a playlist
  editorial <id>  fetch an editorial
  radio <id>      fetch a radio
  chart           fetch the global charts
  info            fetch country and offer info
  options         fetch the current user options`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := deezer.New()
	if cfg.BaseURL != "" {
		client = deezer.NewWithBaseURL(cfg.BaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, client, cfg, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, deezer.ErrNotFound) {
			fmt.Printf("%s %s: not found\n", os.Args[1], args1(os.Args[2:]))
			os.Exit(1)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func args1(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func run(ctx context.Context, c *deezer.Client, cfg *config.Config, resource string, args []string) error {
	switch resource {
	case "chart":
		chart, err := c.GetChart(ctx)
		if err != nil {
			return err
		}
		printChart(chart, cfg.Limit)
		return nil

	case "info":
		info, err := c.GetInfo(ctx)
		if err != nil {
			return err
		}
		printInfo(info)
		return nil

	case "options":
		opts, err := c.GetOptions(ctx)
		if err != nil {
			return err
		}
		printOptions(opts)
		return nil
	}

	if len(args) < 1 {
		return fmt.Errorf("resource %q needs an id", resource)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	switch resource {
	case "track":
		track, err := c.GetTrack(ctx, id)
		if err != nil {
			return err
		}
		printTrack(track)
	case "artist":
		artist, err := c.GetArtist(ctx, id)
		if err != nil {
			return err
		}
		printArtist(artist)
	case "album":
		album, err := c.GetAlbum(ctx, id)
		if err != nil {
			return err
		}
		printAlbum(album, cfg.Limit)
	case "genre":
		genre, err := c.GetGenre(ctx, id)
		if err != nil {
			return err
		}
		printHeader(genre.Name)
		printField("Picture", genre.Picture)
	case "comment":
		comment, err := c.GetComment(ctx, id)
		if err != nil {
			return err
		}
		printHeader(fmt.Sprintf("Comment by %s", comment.Author.Name))
		printField("Posted", time.Unix(comment.Date, 0).Format("2006-01-02 15:04"))
		printField("Text", comment.Text)
	case "user":
		user, err := c.GetUser(ctx, id)
		if err != nil {
			return err
		}
		printUser(user)
	case "playlist":
		playlist, err := c.GetPlaylist(ctx, id)
		if err != nil {
			return err
		}
		printPlaylist(playlist, cfg.Limit)
	case "editorial":
		editorial, err := c.GetEditorial(ctx, id)
		if err != nil {
			return err
		}
		printHeader(editorial.Name)
		printField("Picture", editorial.Picture)
	case "radio":
		radio, err := c.GetRadio(ctx, id)
		if err != nil {
			return err
		}
		printHeader(radio.Title)
		printField("Description", radio.Description)
		printField("Tracklist", radio.Tracklist)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	return nil
}

func printHeader(title string) {
	fmt.Println(titleStyle.Render(title))
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s %s\n", labelStyle.Render(label), value)
}

func printTrack(t *deezer.Track) {
	printHeader(fmt.Sprintf("%s - %s", t.Artist.Name, t.Title))
	printField("Album", t.Album.Title)
	printField("Duration", formatDuration(t.Duration))
	printField("Released", t.ReleaseDate)
	printField("ISRC", t.ISRC)
	printField("Rank", humanize.Comma(int64(t.Rank)))
	if t.BPM > 0 {
		printField("BPM", fmt.Sprintf("%.1f", t.BPM))
	}
	if t.ExplicitLyrics {
		printField("Explicit", "yes")
	}
	printField("Link", t.Link)
}

func printArtist(a *deezer.Artist) {
	printHeader(a.Name)
	printField("Albums", humanize.Comma(int64(a.AlbumCount)))
	printField("Fans", humanize.Comma(int64(a.FanCount)))
	if a.HasRadio {
		printField("Radio", "yes")
	}
	printField("Link", a.Link)
}

func printAlbum(a *deezer.Album, limit int) {
	printHeader(fmt.Sprintf("%s - %s", a.Artist.Name, a.Title))
	printField("Released", a.ReleaseDate)
	printField("Label", a.Label)
	printField("Tracks", strconv.Itoa(a.TrackCount))
	printField("Duration", formatDuration(a.Duration))
	printField("Fans", humanize.Comma(int64(a.Fans)))
	printField("Link", a.Link)

	for i, track := range a.Tracks.Items {
		if i >= limit {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(a.Tracks.Items)-limit)))
			break
		}
		fmt.Printf("  %2d. %s %s\n", i+1, track.Title, dimStyle.Render(formatDuration(track.Duration)))
	}
}

func printUser(u *deezer.User) {
	printHeader(u.Name)
	printField("Country", u.Country)
	printField("Member since", u.InscriptionDate)
	printField("Link", u.Link)
}

func printPlaylist(p *deezer.Playlist, limit int) {
	printHeader(p.Title)
	printField("By", p.Creator.Name)
	printField("Tracks", strconv.Itoa(p.TrackCount))
	printField("Duration", formatDuration(p.Duration))
	printField("Fans", humanize.Comma(int64(p.Fans)))
	printField("Link", p.Link)

	for i, track := range p.Tracks.Items {
		if i >= limit {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(p.Tracks.Items)-limit)))
			break
		}
		fmt.Printf("  %2d. %s %s\n", i+1, track.Title, dimStyle.Render(track.Artist.Name))
	}
}

func printChart(chart *deezer.Chart, limit int) {
	printHeader("Top Tracks")
	for i, t := range chart.Tracks {
		if i >= limit {
			break
		}
		fmt.Printf("  %2d. %s %s\n", t.Position, t.Title, dimStyle.Render(t.Artist.Name))
	}

	printHeader("Top Albums")
	for i, a := range chart.Albums {
		if i >= limit {
			break
		}
		fmt.Printf("  %2d. %s %s\n", a.Position, a.Title, dimStyle.Render(a.Artist.Name))
	}

	printHeader("Top Artists")
	for i, a := range chart.Artists {
		if i >= limit {
			break
		}
		fmt.Printf("  %2d. %s\n", a.Position, a.Name)
	}

	printHeader("Top Playlists")
	for i, p := range chart.Playlists {
		if i >= limit {
			break
		}
		fmt.Printf("  %2d. %s %s\n", p.Position, p.Title, dimStyle.Render(p.User.Name))
	}
}

func printInfo(info *deezer.Info) {
	printHeader(info.Country)
	printField("ISO", info.CountryISO)
	printField("Open", strconv.FormatBool(info.Open))
	for _, offer := range info.Offers {
		fmt.Printf("  %s %s\n", offer.Name, dimStyle.Render(offer.DisplayedAmount))
	}
}

func printOptions(opts *deezer.Options) {
	printHeader("Options")
	printField("Streaming", strconv.FormatBool(opts.Streaming))
	printField("HQ", strconv.FormatBool(opts.HQ))
	printField("Lossless", strconv.FormatBool(opts.Lossless))
	printField("Offline", strconv.FormatBool(opts.Offline))
	printField("Radio", strconv.FormatBool(opts.Radio))
	if opts.RadioSkips > 0 {
		printField("Radio skips", strconv.Itoa(opts.RadioSkips))
	}
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
