package reports

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/features/wards"
)

// BuildListFilter translates a ListQuery into a Mongo filter. Filters are
// conjunctive; the search term matches case-insensitively as a substring
// against title or description.
func BuildListFilter(q ListQuery) bson.M {
	filter := bson.M{}

	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Ward != "" {
		// Wards are stored in canonical form; match against it.
		filter["ward"] = wards.Normalize(q.Ward)
	}
	if q.Search != "" {
		search := primitive.Regex{
			Pattern: regexp.QuoteMeta(q.Search),
			Options: "i",
		}
		filter["$or"] = bson.A{
			bson.M{"title": search},
			bson.M{"description": search},
		}
	}

	return filter
}

// ListSort orders by vote count descending. Mongo sorts are not stable, so
// createdAt and _id break ties into a deterministic total order.
func ListSort() bson.D {
	return bson.D{
		{Key: "voteCount", Value: -1},
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}
}
