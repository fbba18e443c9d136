package model

import "time"

type Event struct {
	DTO
	Title         string    `gorm:"not null" json:"title"`
	Slug          string    `gorm:"uniqueIndex;size:120" json:"slug"`
	Date          time.Time `gorm:"not null" json:"date"`
	Location      string    `json:"location"`
	Organizer     string    `json:"organizer"`
	OrganizerLogo string    `json:"organizerLogo"`
	SponsorLogos  []string  `gorm:"serializer:json" json:"sponsorLogos"`
}

type CreateEventInput struct {
	Title         string    `json:"title" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Organizer     string    `json:"organizer" validate:"omitempty"`
	OrganizerLogo string    `json:"organizerLogo" validate:"omitempty,url"`
	SponsorLogos  []string  `json:"sponsorLogos" validate:"omitempty,dive,url"`
}

type EditEventInput struct {
	Title         *string    `json:"title" validate:"omitempty,min=1"`
	Date          *time.Time `json:"date"`
	Location      *string    `json:"location"`
	Organizer     *string    `json:"organizer"`
	OrganizerLogo *string    `json:"organizerLogo" validate:"omitempty,url"`
	SponsorLogos  *[]string  `json:"sponsorLogos" validate:"omitempty,dive,url"`
}

// EventSummary is the redacted event view embedded in verification snapshots.
type EventSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Organizer     string    `json:"organizer"`
	OrganizerLogo string    `json:"organizerLogo"`
	SponsorLogos  []string  `json:"sponsorLogos"`
}

func (e *Event) Summary() *EventSummary {
	return &EventSummary{
		ID:            e.ID,
		Title:         e.Title,
		Date:          e.Date,
		Location:      e.Location,
		Organizer:     e.Organizer,
		OrganizerLogo: e.OrganizerLogo,
		SponsorLogos:  e.SponsorLogos,
	}
}
