package dto

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=120"`
	Description string    `json:"description" binding:"required,max=5000"`
	Date        time.Time `json:"date" binding:"required"`
	Venue       string    `json:"venue" binding:"required,max=120"`
	PosterURL   string    `json:"poster_url" binding:"omitempty,url"`
}

// DecideEventRequest carries the admin decision. Status is checked by the
// use case so an invalid value maps to invalid_transition.
type DecideEventRequest struct {
	Status string `json:"status" binding:"required"`
}
