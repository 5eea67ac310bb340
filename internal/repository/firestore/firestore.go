// Package firestore implements the document store repositories on
// Cloud Firestore, reached through the Firebase Admin SDK.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tweederent-backend/internal/repository"
)

const (
	usersCollection   = "users"
	devicesCollection = "devices"
	rentalsCollection = "rentals"
	reviewsCollection = "reviews"
)

// Store bundles the Firestore-backed repositories behind one client.
type Store struct {
	client *firestore.Client
	repository.UserRepository
	repository.DeviceRepository
	repository.RentalRepository
	repository.ReviewRepository
}

// NewStore connects to Firestore for the given project. credentialsFile
// may be empty, in which case application default credentials apply.
func NewStore(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &Store{
		client:           client,
		UserRepository:   NewUserRepository(client),
		DeviceRepository: NewDeviceRepository(client),
		RentalRepository: NewRentalRepository(client),
		ReviewRepository: NewReviewRepository(client),
	}, nil
}

// Close releases the underlying Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}

// isNotFound reports whether err is Firestore's missing-document error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
