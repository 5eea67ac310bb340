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

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	logger.DatabaseCall("set", usersCollection, "id", user.ID)
	if _, err := r.col().Doc(user.ID).Set(ctx, user); err != nil {
		return apperr.Storage("failed to create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("user %s", id)
		}
		return nil, apperr.Storage("failed to fetch user", err)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, apperr.Storage("failed to decode user", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, apperr.NotFound("user with email %s", email)
	}
	if err != nil {
		return nil, apperr.Storage("failed to query user by email", err)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, apperr.Storage("failed to decode user", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	logger.DatabaseCall("set", usersCollection, "id", user.ID)
	if _, err := r.col().Doc(user.ID).Set(ctx, user); err != nil {
		return apperr.Storage("failed to update user", err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var users []domain.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Storage("failed to list users", err)
		}
		var user domain.User
		if err := snap.DataTo(&user); err != nil {
			return nil, apperr.Storage("failed to decode user", err)
		}
		users = append(users, user)
	}
	return users, nil
}
