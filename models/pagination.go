package models

// PageRequest carries normalised pagination parameters through the service
// and store layers.
type PageRequest struct {
	// Page is the 1-based page number. Always >= 1 after normalisation.
	Page int `json:"page"`

	// Limit is the maximum number of items per page. Always >= 1 after
	// normalisation.
	Limit int `json:"limit"`
}

// Offset returns the number of rows to skip for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
