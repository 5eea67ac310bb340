package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusApproved  RentalStatus = "APPROVED"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// rentalTransitions is the full set of legal status transitions.
// COMPLETED and CANCELLED are terminal and have no outgoing edges.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:  {RentalStatusApproved, RentalStatusCancelled},
	RentalStatusApproved: {RentalStatusActive, RentalStatusCancelled},
	RentalStatusActive:   {RentalStatusCompleted},
}

// CanTransitionTo reports whether a rental in status s may move to next.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, t := range rentalTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined for s.
func (s RentalStatus) IsTerminal() bool {
	return len(rentalTransitions[s]) == 0
}

// IsBlocking reports whether a rental in status s counts against a
// device's availability. Only cancelled rentals release their dates;
// a pending request provisionally holds the slot.
func (s RentalStatus) IsBlocking() bool {
	return s != RentalStatusCancelled
}

// Rental is a booking contract between a renter and a device's owner
// for an inclusive calendar-day range.
//
// TotalPrice and SecurityDeposit are snapshots captured from the device
// at creation time; later device edits never change an existing rental.
type Rental struct {
	ID              string       `json:"id" firestore:"id"`
	DeviceID        string       `json:"device_id" firestore:"deviceId"`
	RenterID        string       `json:"renter_id" firestore:"renterId"`
	OwnerID         string       `json:"owner_id" firestore:"ownerId"`
	StartDate       time.Time    `json:"start_date" firestore:"startDate"`
	EndDate         time.Time    `json:"end_date" firestore:"endDate"`
	Status          RentalStatus `json:"status" firestore:"status"`
	TotalPrice      float64      `json:"total_price" firestore:"totalPrice"`
	SecurityDeposit float64      `json:"security_deposit" firestore:"securityDeposit"`
	IsReviewed      bool         `json:"is_reviewed" firestore:"isReviewed"`
	CreateDate      time.Time    `json:"create_date" firestore:"createDate"`
	UpdateDate      time.Time    `json:"update_date" firestore:"updateDate"`
}

// Overlaps reports whether the rental's date range conflicts with the
// given inclusive range. Endpoints count as a conflict, so back-to-back
// same-day handovers are disallowed.
func (r *Rental) Overlaps(start, end time.Time) bool {
	return !r.EndDate.Before(start) && !r.StartDate.After(end)
}
