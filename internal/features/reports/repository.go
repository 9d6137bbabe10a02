package reports

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Repository handles database interactions for the reports feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "authorId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			// Listing index: filters plus the vote-count ordering
			Keys: bson.D{
				{Key: "ward", Value: 1},
				{Key: "status", Value: 1},
				{Key: "voteCount", Value: -1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			// Windowed stats scan
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new report
func (r *Repository) Create(ctx context.Context, report *Report) error {
	report.Status = StatusPending
	report.VoteCount = 0
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

// GetByID finds a report by its ID
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Report, error) {
	var report Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// List returns the filtered, vote-sorted, paginated report collection
func (r *Repository) List(ctx context.Context, q ListQuery) ([]Report, int64, error) {
	filter := BuildListFilter(q)

	opts := options.Find().
		SetSort(ListSort()).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Report
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListByAuthor returns a resident's own reports, newest first
func (r *Repository) ListByAuthor(ctx context.Context, authorID primitive.ObjectID, page, limit int) ([]Report, int64, error) {
	filter := bson.M{"authorId": authorID}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Report
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateStatus sets the report status and returns the previous document so
// the caller can log the transition.
func (r *Repository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*Report, error) {
	var previous Report
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	).Decode(&previous)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &previous, nil
}

// SetUrgent toggles the urgent flag. Orthogonal to status.
func (r *Repository) SetUrgent(ctx context.Context, id primitive.ObjectID, urgent bool) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isUrgent": urgent, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementVoteCount adjusts the derived vote counter
func (r *Repository) IncrementVoteCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"voteCount": delta}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a report
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
