package domain

import "time"

// Court represents a bookable court inside a club
type Court struct {
	ID                int64
	ClubID            int64
	Name              string
	Slug              string
	Type              string
	Surface           string
	Indoor            bool
	SportType         string
	DefaultPriceCents int64 // почасовая ставка по умолчанию в минорных единицах валюты

	IsPublished bool
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the court can appear in availability results
func (c *Court) IsBookable() bool {
	return c.IsPublished && c.IsActive
}
