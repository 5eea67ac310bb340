package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating and comment from the renter of a completed rental
// about the device's owner. At most one review exists per rental.
type Review struct {
	ID         string    `json:"id" firestore:"id"`
	RentalID   string    `json:"rental_id" firestore:"rentalId"`
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	ReviewedID string    `json:"reviewed_id" firestore:"reviewedId"`
	DeviceID   string    `json:"device_id" firestore:"deviceId"`
	Rating     int       `json:"rating" firestore:"rating"`
	Comment    string    `json:"comment" firestore:"comment"`
	CreateDate time.Time `json:"create_date" firestore:"createDate"`
}
