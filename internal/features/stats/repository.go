package stats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements ReportCounter over the reports collection
type Repository struct {
	reportsCollection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		reportsCollection: db.Collection("reports"),
	}
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.reportsCollection.CountDocuments(ctx, bson.M{})
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.reportsCollection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *Repository) CountUrgent(ctx context.Context) (int64, error) {
	return r.reportsCollection.CountDocuments(ctx, bson.M{"isUrgent": true})
}

// CountCreatedBetween counts reports with createdAt in [from, to)
func (r *Repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.reportsCollection.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}
