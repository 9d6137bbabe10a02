package announcements

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Repository handles database interactions for the announcements feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("announcements")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "targetWard", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new announcement
func (r *Repository) Create(ctx context.Context, a *Announcement) error {
	a.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// ListForWard fetches announcements targeted at the ward or at all wards.
// Expiry filtering and ordering happen in Resolve; the collection is small
// enough that recomputing on each call is fine.
func (r *Repository) ListForWard(ctx context.Context, ward string) ([]Announcement, error) {
	filter := bson.M{"targetWard": bson.M{"$in": []string{"all", ward}}}
	return r.find(ctx, filter)
}

// ListAll fetches every announcement regardless of targeting (admin view)
func (r *Repository) ListAll(ctx context.Context) ([]Announcement, error) {
	return r.find(ctx, bson.M{})
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []Announcement
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an announcement
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
