package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blogging-api/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// Insert stores a new blog document under its pre-assigned id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	_, err := r.col.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// FindByID returns a single blog by its id.
func (r *BlogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll streams the whole collection. The store offers no compound
// predicate+sort query, so listing intents filter and sort in memory.
func (r *BlogRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// FindByAuthor returns only the blogs owned by the given email, filtered
// server-side on the indexed author_email field.
func (r *BlogRepository) FindByAuthor(ctx context.Context, email string) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, bson.M{"author_email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Replace overwrites the whole document.
func (r *BlogRepository) Replace(ctx context.Context, b *models.Blog) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Update applies a partial $set update.
func (r *BlogRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document; a second delete on the same id reports
// ErrNotFound, never success.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
