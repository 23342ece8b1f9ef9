package deezer

import (
	"context"
	"fmt"
)

// Comment contains all the information the API exposes for a comment.
type Comment struct {
	ID     int64         `json:"id"`
	Text   string        `json:"text"`
	Date   int64         `json:"date"` // unix timestamp
	Parent CommentParent `json:"object"`
	Author CommentAuthor `json:"author"`
}

// CommentParent identifies the object a comment was left on. Type is
// "artist", "album" or "playlist"; the id is a string on the wire.
type CommentParent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// CommentAuthor is the shortened user who wrote a Comment. Use GetFull
// for the complete User record.
type CommentAuthor struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
}

// GetFull fetches the complete User this reference points at.
func (a CommentAuthor) GetFull(ctx context.Context, c *Client) (*User, error) {
	return c.GetUser(ctx, a.ID)
}

// GetComment fetches the comment with the given id.
func (c *Client) GetComment(ctx context.Context, id int64) (*Comment, error) {
	return fetch[Comment](ctx, c, fmt.Sprintf("/comment/%d", id))
}

// GetComment fetches a comment with a one-off client. Use Client when
// making many requests.
func GetComment(ctx context.Context, id int64) (*Comment, error) {
	return New().GetComment(ctx, id)
}
