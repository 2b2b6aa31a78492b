package domain

import "time"

// MaxDescriptionLen mirrors the limit enforced by the booking UI.
const MaxDescriptionLen = 130

type Tour struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Capacity    int        `json:"capacity"`
	Active      bool       `json:"active"`
	TourDate    *time.Time `json:"tour_date,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TourWithRemaining is a catalog row plus the derived remaining capacity:
// capacity minus the sum of committed ticket quantities. It is computed on
// read and never stored.
type TourWithRemaining struct {
	Tour
	Remaining int `json:"remaining"`
}

type CreateTourInput struct {
	Destination string
	Description string
	Price       int64
	Capacity    int
	Active      *bool
	TourDate    *time.Time
	ImageURL    string
}

// UpdateTourInput carries a partial update; nil fields are left untouched.
// The active flag is excluded on purpose, SetActive is the only way to flip it.
type UpdateTourInput struct {
	Destination *string
	Description *string
	Price       *int64
	Capacity    *int
	TourDate    *time.Time
	ImageURL    *string
}

type TourFilter struct {
	Active *bool
	Page   int
	Limit  int
}

type TourPage struct {
	Tours      []*TourWithRemaining `json:"tours"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int64                `json:"total_pages"`
}
