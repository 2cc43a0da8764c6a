package models

// Credentials carries a username/password pair for registration and login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateMovieRequest is the payload of POST /api/movies.
// ReleaseDate is kept as the raw string so that validation can report an
// unparseable date as a field error instead of a JSON decode failure.
type CreateMovieRequest struct {
	Name        string `json:"name" validate:"required"`
	ReleaseDate string `json:"releaseDate" validate:"required"`
}

// UpdateMovieRequest is the payload of PUT /api/movies/{id}.
type UpdateMovieRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateReviewRequest is the payload of POST /api/reviews.
type CreateReviewRequest struct {
	MovieID  int64  `json:"movieId" validate:"required,gt=0"`
	Rating   int    `json:"rating" validate:"required,min=1,max=10"`
	Comments string `json:"comments" validate:"required"`
}

// UpdateReviewRequest is the payload of PUT /api/reviews/{id}.
// The movie reference of an existing review never changes.
type UpdateReviewRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=10"`
	Comments string `json:"comments" validate:"required"`
}
