package jobs

import (
	"context"
	"time"

	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/utils"
)

// ExpireStalePendingRequests cancels PENDING rental requests whose
// start date has already passed. PENDING requests block the device
// calendar; cancelling the ones the owner never acted on frees those
// dates for new bookings.
func (jr *JobRunner) ExpireStalePendingRequests() {
	jr.runWithRecovery("ExpireStalePendingRequests", func() {
		ctx := context.Background()
		today := utils.TruncateToDay(time.Now().UTC())

		pending, err := jr.rentals.ListByStatus(ctx, domain.RentalStatusPending)
		if err != nil {
			logger.Error("Failed to list pending rentals", "error", err)
			return
		}

		count := 0
		for _, rental := range pending {
			if !rental.StartDate.Before(today) {
				continue
			}
			if err := jr.rentals.UpdateStatus(ctx, rental.ID, domain.RentalStatusCancelled); err != nil {
				logger.Error("Failed to expire stale rental request",
					"rental_id", rental.ID, "error", err)
				continue
			}
			logger.Debug("Expired stale rental request",
				"rental_id", rental.ID,
				"device_id", rental.DeviceID,
				"start_date", rental.StartDate)
			count++
		}

		logger.Info("Expired stale rental requests", "count", count)
	})
}
