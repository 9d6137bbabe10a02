package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/features/wards"
)

func TestBuildListFilterEmpty(t *testing.T) {
	filter := BuildListFilter(ListQuery{})
	require.Empty(t, filter)
}

func TestBuildListFilterConjunctive(t *testing.T) {
	filter := BuildListFilter(ListQuery{
		Category: CategoryEnvironment,
		Status:   StatusPending,
		Ward:     "kati",
	})

	require.Equal(t, CategoryEnvironment, filter["category"])
	require.Equal(t, StatusPending, filter["status"])
	require.Equal(t, "kati", filter["ward"])
	require.NotContains(t, filter, "$or")
}

func TestBuildListFilterNormalizesWard(t *testing.T) {
	// Any spelling the registry accepts must land on the same stored form,
	// otherwise a report created as " KATI " would never match ?ward=kati.
	registry := wards.NewRegistry([]string{"kati"})

	stored, ok := registry.Canonical(" KATI ")
	require.True(t, ok)

	filter := BuildListFilter(ListQuery{Ward: "kati"})
	require.Equal(t, stored, filter["ward"])

	filter = BuildListFilter(ListQuery{Ward: " KATI "})
	require.Equal(t, stored, filter["ward"])
}

func TestBuildListFilterSearch(t *testing.T) {
	filter := BuildListFilter(ListQuery{Status: StatusPending, Search: "drain"})

	require.Equal(t, StatusPending, filter["status"])

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	description := or[1].(bson.M)["description"].(primitive.Regex)
	require.Equal(t, "drain", title.Pattern)
	require.Equal(t, "i", title.Options)
	require.Equal(t, "drain", description.Pattern)
	require.Equal(t, "i", description.Options)
}

func TestBuildListFilterEscapesRegexMeta(t *testing.T) {
	filter := BuildListFilter(ListQuery{Search: "pipe (burst)?"})

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, `pipe \(burst\)\?`, title.Pattern)
}

func TestListSortOrdersByVotesThenRecency(t *testing.T) {
	sort := ListSort()

	require.Equal(t, "voteCount", sort[0].Key)
	require.Equal(t, -1, sort[0].Value)
	require.Equal(t, "createdAt", sort[1].Key)
	require.Equal(t, -1, sort[1].Value)
	require.Equal(t, "_id", sort[2].Key)
}
