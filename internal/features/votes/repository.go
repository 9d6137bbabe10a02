package votes

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for the votes feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("votes")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// Unique compound index - the at-most-one-vote guarantee
			Keys: bson.D{
				{Key: "reportId", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	return &Repository{collection: collection}
}

// Insert records a vote. Returns false without error when the vote already
// exists; the unique index is the atomic insert-if-absent primitive.
func (r *Repository) Insert(ctx context.Context, reportID, userID primitive.ObjectID) (bool, error) {
	vote := &Vote{
		ID:        primitive.NewObjectID(),
		ReportID:  reportID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	_, err := r.collection.InsertOne(ctx, vote)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes a vote. Only used to roll back when the counter update
// fails after an insert.
func (r *Repository) Remove(ctx context.Context, reportID, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{
		"reportId": reportID,
		"userId":   userID,
	})
	return err
}

// Exists checks whether the resident has voted on the report
func (r *Repository) Exists(ctx context.Context, reportID, userID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"reportId": reportID,
		"userId":   userID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountForReport returns the number of vote records for a report
func (r *Repository) CountForReport(ctx context.Context, reportID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"reportId": reportID})
}
