package validators

import (
	"time"

	"github.com/kinoshelf/go-movie-reviews/models"
)

// Validator checks the shape of incoming request payloads before any
// persistence call is made. Every method returns nil when the payload is
// valid and a *ValidationError describing every invalid field otherwise.
type Validator interface {
	// Credentials validates a registration/login payload.
	Credentials(creds models.Credentials) error

	// Movie validates a movie creation payload and returns the parsed
	// release date on success.
	Movie(req models.CreateMovieRequest) (time.Time, error)

	// MovieUpdate validates a movie rename payload.
	MovieUpdate(req models.UpdateMovieRequest) error

	// Review validates a review creation payload.
	Review(req models.CreateReviewRequest) error

	// ReviewUpdate validates a review mutation payload.
	ReviewUpdate(req models.UpdateReviewRequest) error
}
