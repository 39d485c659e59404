package entity

import "time"

// Donation is immutable once recorded; it is only ever deleted.
type Donation struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	CampaignID int       `json:"campaign_id"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
}
