package domain

import "time"

// User is an account profile keyed by the identity provider's user id.
// Rating and ReviewCount are a running aggregate over received reviews;
// the nightly reconcile job recomputes them from the reviews collection.
type User struct {
	ID           string    `json:"id" firestore:"id"`
	Email        string    `json:"email" firestore:"email"`
	Name         string    `json:"name" firestore:"name"`
	PhoneNumber  string    `json:"phone_number" firestore:"phoneNumber"`
	PasswordHash string    `json:"-" firestore:"passwordHash"`
	Location     Location  `json:"location" firestore:"location"`
	Rating       float64   `json:"rating" firestore:"rating"`
	ReviewCount  int       `json:"review_count" firestore:"reviewCount"`
	CreateDate   time.Time `json:"create_date" firestore:"createDate"`
	UpdateDate   time.Time `json:"update_date" firestore:"updateDate"`
}
