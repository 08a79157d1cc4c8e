package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jeopardy-server/internal/model"
)

// UserRepo handles MongoDB operations for user accounts.
type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		collection: db.Collection("users"),
	}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// GetByUsername returns nil without error when no account exists.
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
