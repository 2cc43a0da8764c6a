package models

import "time"

// Review represents a single user review of a movie.
// A review is owned by exactly one user and references exactly one movie.
type Review struct {
	// ID is the internal unique identifier of the review.
	ID int64 `json:"id"`

	// MovieID references the reviewed movie.
	MovieID int64 `json:"movieId"`

	// UserID references the review's author. Only the author may update or
	// delete the review.
	UserID int64 `json:"userId"`

	// Rating is the integer score in the inclusive range [1,10].
	Rating int `json:"rating"`

	// Comments is the free-text body of the review. Always non-empty.
	Comments string `json:"comments"`

	// CreatedAt is the timestamp when the review was created.
	CreatedAt time.Time `json:"createdAt"`

	// User carries the author's public info when the endpoint embeds it
	// (per-movie review listing and search). Nil elsewhere.
	User *UserInfo `json:"user,omitempty"`

	// Movie carries the reviewed movie's name in search results. Nil elsewhere.
	Movie *MovieInfo `json:"movie,omitempty"`
}

// UserInfo is the public projection of a user embedded in review payloads.
type UserInfo struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
}

// MovieInfo is the projection of a movie embedded in search results.
type MovieInfo struct {
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}
