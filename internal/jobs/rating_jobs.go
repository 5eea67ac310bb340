package jobs

import (
	"context"
	"math"

	"tweederent-backend/internal/logger"
)

// ReconcileUserRatings recomputes each user's rating aggregate from the
// reviews collection. The running average kept by review submission can
// drift when a MarkReviewed write succeeds but the aggregate update
// fails; this job restores the true values.
func (jr *JobRunner) ReconcileUserRatings() {
	jr.runWithRecovery("ReconcileUserRatings", func() {
		ctx := context.Background()

		users, err := jr.users.List(ctx)
		if err != nil {
			logger.Error("Failed to list users", "error", err)
			return
		}

		fixed := 0
		for _, user := range users {
			reviews, err := jr.reviews.ListByReviewed(ctx, user.ID)
			if err != nil {
				logger.Error("Failed to list reviews for user", "user_id", user.ID, "error", err)
				continue
			}

			var rating float64
			if len(reviews) > 0 {
				sum := 0
				for _, review := range reviews {
					sum += review.Rating
				}
				rating = float64(sum) / float64(len(reviews))
			}

			if user.ReviewCount == len(reviews) && math.Abs(user.Rating-rating) < 1e-9 {
				continue
			}

			u := user
			u.Rating = rating
			u.ReviewCount = len(reviews)
			if err := jr.users.Update(ctx, &u); err != nil {
				logger.Error("Failed to update user rating aggregate", "user_id", user.ID, "error", err)
				continue
			}
			logger.Debug("Reconciled user rating",
				"user_id", user.ID,
				"rating", rating,
				"review_count", len(reviews))
			fixed++
		}

		logger.Info("Reconciled user ratings", "updated", fixed)
	})
}
