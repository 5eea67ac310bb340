package domain

import "time"

// Location is the postal address and coordinates a device is offered at.
type Location struct {
	Address    string  `json:"address" firestore:"address"`
	Latitude   float64 `json:"latitude" firestore:"latitude"`
	Longitude  float64 `json:"longitude" firestore:"longitude"`
	City       string  `json:"city" firestore:"city"`
	PostalCode string  `json:"postal_code" firestore:"postalCode"`
}

// Device is an item offered for daily rent by its owner.
type Device struct {
	ID              string    `json:"id" firestore:"id"`
	Name            string    `json:"name" firestore:"name"`
	Description     string    `json:"description" firestore:"description"`
	Category        string    `json:"category" firestore:"category"`
	OwnerID         string    `json:"owner_id" firestore:"ownerId"`
	DailyPrice      float64   `json:"daily_price" firestore:"dailyPrice"`
	SecurityDeposit float64   `json:"security_deposit" firestore:"securityDeposit"`
	Location        Location  `json:"location" firestore:"location"`
	ImageURLs       []string  `json:"image_urls" firestore:"imageUrls"`
	Condition       string    `json:"condition" firestore:"condition"`
	IsAvailable     bool      `json:"is_available" firestore:"isAvailable"`
	CreateDate      time.Time `json:"create_date" firestore:"createDate"`
}
