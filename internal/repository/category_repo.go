package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jeopardy-server/internal/model"
)

// CategoryRepo handles MongoDB operations for the seeded question catalog.
type CategoryRepo interface {
	Insert(ctx context.Context, category *model.Category) error
	GetAll(ctx context.Context) ([]*model.Category, error)
	DeleteAll(ctx context.Context) error
}

type categoryRepo struct {
	collection *mongo.Collection
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(db *mongo.Database) CategoryRepo {
	return &categoryRepo{
		collection: db.Collection("categories"),
	}
}

func (r *categoryRepo) Insert(ctx context.Context, category *model.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	return err
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]*model.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
