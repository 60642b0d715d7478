package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blogging-api/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert creates a new user keyed by email. ErrDuplicate on an existing email.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	_, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// FindByEmail returns the user document keyed by the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update applies a partial $set update to the user document.
func (r *UserRepository) Update(ctx context.Context, email string, fields map[string]any) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFavourite appends a blog id to the favourites list with $addToSet, so
// concurrent adds of the same id cannot produce duplicates.
// ErrDuplicate when the id is already present.
func (r *UserRepository) AddFavourite(ctx context.Context, email, blogID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": email},
		bson.M{"$addToSet": bson.M{"favourites": blogID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrDuplicate
	}
	return nil
}

// RemoveFavourite removes a blog id via $pull. ErrNotFound when either the
// user or the favourite entry is absent.
func (r *UserRepository) RemoveFavourite(ctx context.Context, email, blogID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": email},
		bson.M{"$pull": bson.M{"favourites": blogID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 || res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSelectedCategories replaces the user's selected_categories list.
// Membership validation happens in the service layer.
func (r *UserRepository) SetSelectedCategories(ctx context.Context, email string, categories []string) error {
	return r.Update(ctx, email, map[string]any{"selected_categories": categories})
}
