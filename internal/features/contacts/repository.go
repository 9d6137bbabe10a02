package contacts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Repository handles database interactions for the contacts feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("contacts")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new contact message with status "new"
func (r *Repository) Create(ctx context.Context, contact *Contact) error {
	contact.Status = StatusNew
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = contact.CreatedAt

	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}
	return nil
}

// List returns contact messages, newest first, optionally filtered by status
func (r *Repository) List(ctx context.Context, status string, page, limit int) ([]Contact, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Contact
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update applies the admin triage fields (status, notes)
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) error {
	set := bson.M{"updatedAt": time.Now()}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.AdminNotes != nil {
		set["adminNotes"] = *req.AdminNotes
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Stats returns the group-by-status counts
func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case StatusNew:
			stats.NewCount = row.Count
		case StatusRead:
			stats.ReadCount = row.Count
		case StatusReplied:
			stats.RepliedCount = row.Count
		}
	}
	return stats, nil
}
