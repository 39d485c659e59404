package entity

import "time"

const (
	CampaignActive   = "active"
	CampaignInactive = "inactive"
)

type Campaign struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Goal        float64   `json:"goal"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	Raised      float64   `json:"raised"` // derived, recomputed from donations
	Image       string    `json:"image"`
}
