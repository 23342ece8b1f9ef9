package deezer

import (
	"context"
	"fmt"
)

// User contains all the information the API exposes for a user. Most
// personal fields are only sent for the authenticated user and default
// to their zero values otherwise.
type User struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	LastName        string `json:"lastname"`
	FirstName       string `json:"firstname"`
	Email           string `json:"email"`
	Status          int    `json:"status"`
	Birthday        string `json:"birthday"`
	InscriptionDate string `json:"inscription_date"`
	Gender          string `json:"gender"` // F or M
	Link            string `json:"link"`
	Picture         string `json:"picture"`
	PictureSmall    string `json:"picture_small"`
	PictureMedium   string `json:"picture_medium"`
	PictureBig      string `json:"picture_big"`
	PictureXL       string `json:"picture_xl"`
	Country         string `json:"country"`
	Lang            string `json:"lang"`
	IsKid           bool   `json:"is_kid"`
	Tracklist       string `json:"tracklist"` // link to the user's flow
}

// GetUser fetches the user with the given id.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	return fetch[User](ctx, c, fmt.Sprintf("/user/%d", id))
}

// GetUser fetches a user with a one-off client. Use Client when making
// many requests.
func GetUser(ctx context.Context, id int64) (*User, error) {
	return New().GetUser(ctx, id)
}
