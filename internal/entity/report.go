package entity

import "time"

// DonationDetail is one row of the donation feed: a donation joined with
// its campaign and its donor.
type DonationDetail struct {
	ID            int       `json:"id"`
	Amount        float64   `json:"amount"`
	Message       string    `json:"message"`
	Date          time.Time `json:"date"`
	CampaignTitle string    `json:"title"`
	CampaignImage string    `json:"image"`
	DonorName     string    `json:"name"`
	DonorPhoto    string    `json:"photo"`
}

type LeaderboardEntry struct {
	Rank               int       `json:"rank"`
	UserID             int       `json:"user_id"`
	ContributorName    string    `json:"contributor_name"`
	Photo              string    `json:"photo"`
	TotalDonations     float64   `json:"total_donations"`
	NumberOfDonations  int       `json:"number_of_donations"`
	LastDonationDate   time.Time `json:"last_donation_date"`
	CampaignsSupported int       `json:"campaigns_supported"`
}
