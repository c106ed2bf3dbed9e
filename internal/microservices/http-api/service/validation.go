package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"litreview/internal/microservices/http-api/models"
)

const (
	maxTitleLength       = 128
	maxDescriptionLength = 2048
	maxImageLength       = 255
	maxHeadlineLength    = 128
	maxBodyLength        = 8192
)

// TicketInput holds the user-editable ticket fields
type TicketInput struct {
	Title       string
	Description string
	Image       *string
}

// ReviewInput holds the user-editable review fields
type ReviewInput struct {
	Rating   int
	Headline string
	Body     string
}

func (in *TicketInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	if in.Image != nil {
		trimmed := strings.TrimSpace(*in.Image)
		if trimmed == "" {
			in.Image = nil
		} else {
			in.Image = &trimmed
		}
	}
}

func (in *ReviewInput) normalize() {
	in.Headline = strings.TrimSpace(in.Headline)
}

func (in TicketInput) validate(v *ValidationError) {
	if in.Title == "" {
		v.add("title", "this field is required")
	} else if utf8.RuneCountInString(in.Title) > maxTitleLength {
		v.add("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		v.add("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLength))
	}
	if in.Image != nil && utf8.RuneCountInString(*in.Image) > maxImageLength {
		v.add("image", fmt.Sprintf("must be at most %d characters", maxImageLength))
	}
}

func (in ReviewInput) validate(v *ValidationError) {
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		v.add("rating", fmt.Sprintf("must be between %d and %d", models.MinRating, models.MaxRating))
	}
	if in.Headline == "" {
		v.add("headline", "this field is required")
	} else if utf8.RuneCountInString(in.Headline) > maxHeadlineLength {
		v.add("headline", fmt.Sprintf("must be at most %d characters", maxHeadlineLength))
	}
	if utf8.RuneCountInString(in.Body) > maxBodyLength {
		v.add("body", fmt.Sprintf("must be at most %d characters", maxBodyLength))
	}
}
