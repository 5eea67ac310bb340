package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

type reviewRepository struct {
	client *firestore.Client
}

func NewReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) col() *firestore.CollectionRef {
	return r.client.Collection(reviewsCollection)
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	logger.DatabaseCall("set", reviewsCollection, "id", review.ID)
	if _, err := r.col().Doc(review.ID).Set(ctx, review); err != nil {
		return apperr.Storage("failed to create review", err)
	}
	return nil
}

func (r *reviewRepository) ListByReviewed(ctx context.Context, reviewedID string) ([]domain.Review, error) {
	return r.queryReviews(ctx, r.col().Where("reviewedId", "==", reviewedID))
}

func (r *reviewRepository) ListByDevice(ctx context.Context, deviceID string) ([]domain.Review, error) {
	return r.queryReviews(ctx, r.col().Where("deviceId", "==", deviceID))
}

func (r *reviewRepository) queryReviews(ctx context.Context, q firestore.Query) ([]domain.Review, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var reviews []domain.Review
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Storage("failed to query reviews", err)
		}
		var review domain.Review
		if err := snap.DataTo(&review); err != nil {
			return nil, apperr.Storage("failed to decode review", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
