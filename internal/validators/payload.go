package validators

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kinoshelf/go-movie-reviews/models"
)

// releaseDateLayouts are the accepted formats for the releaseDate payload
// field, tried in order. The plain calendar date is the canonical form; the
// RFC 3339 variant is accepted for clients that send full timestamps.
var releaseDateLayouts = []string{"2006-01-02", time.RFC3339}

// Per-field validation messages surfaced to clients in the 400 body.
var fieldMessages = map[string]string{
	"username":    "Username is required",
	"password":    "Password is required",
	"name":        "Movie name is required",
	"releaseDate": "Valid release date is required",
	"movieId":     "Valid movie ID is required",
	"rating":      "Rating must be a number between 1 and 10",
	"comments":    "Review comments are required",
}

// payloadValidator implements [Validator] on top of go-playground/validator.
// Struct tags drive the numeric/required checks; blank-string and date checks
// that the tag language cannot express are applied afterwards.
type payloadValidator struct {
	validate *validator.Validate
}

// NewPayloadValidator constructs a [Validator] ready for use.
// The underlying validator reports JSON tag names so that field errors line
// up with the payload the client actually sent.
func NewPayloadValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &payloadValidator{validate: v}
}

func (p *payloadValidator) Credentials(creds models.Credentials) error {
	fields := p.structFields(creds)
	if strings.TrimSpace(creds.Username) == "" {
		fields["username"] = fieldMessages["username"]
	}
	if strings.TrimSpace(creds.Password) == "" {
		fields["password"] = fieldMessages["password"]
	}

	return errorOrNil(fields)
}

func (p *payloadValidator) Movie(req models.CreateMovieRequest) (time.Time, error) {
	fields := p.structFields(req)
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = fieldMessages["name"]
	}

	releaseDate, ok := parseReleaseDate(req.ReleaseDate)
	if !ok {
		fields["releaseDate"] = fieldMessages["releaseDate"]
	}

	if err := errorOrNil(fields); err != nil {
		return time.Time{}, err
	}

	return releaseDate, nil
}

func (p *payloadValidator) MovieUpdate(req models.UpdateMovieRequest) error {
	fields := p.structFields(req)
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = fieldMessages["name"]
	}

	return errorOrNil(fields)
}

func (p *payloadValidator) Review(req models.CreateReviewRequest) error {
	fields := p.structFields(req)
	if strings.TrimSpace(req.Comments) == "" {
		fields["comments"] = fieldMessages["comments"]
	}

	return errorOrNil(fields)
}

func (p *payloadValidator) ReviewUpdate(req models.UpdateReviewRequest) error {
	fields := p.structFields(req)
	if strings.TrimSpace(req.Comments) == "" {
		fields["comments"] = fieldMessages["comments"]
	}

	return errorOrNil(fields)
}

// structFields runs the tag-driven checks and converts every violation into
// a field-name-to-message entry. Unexpected (non-validation) errors from the
// library are reported under a catch-all key rather than dropped.
func (p *payloadValidator) structFields(payload any) map[string]string {
	fields := make(map[string]string)

	err := p.validate.Struct(payload)
	if err == nil {
		return fields
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["payload"] = "invalid payload"
		return fields
	}

	for _, fieldError := range validationErrors {
		name := fieldError.Field()
		if message, ok := fieldMessages[name]; ok {
			fields[name] = message
		} else {
			fields[name] = "invalid value"
		}
	}

	return fields
}

// parseReleaseDate attempts to parse the raw releaseDate payload value.
func parseReleaseDate(raw string) (time.Time, bool) {
	for _, layout := range releaseDateLayouts {
		if parsed, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// errorOrNil wraps a non-empty field map into a *ValidationError.
func errorOrNil(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	return newValidationError(fields)
}
