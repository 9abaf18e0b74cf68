package activities

import (
	"testing"

	"menara/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListFilterDefaults(t *testing.T) {
	filter := buildListFilter(utils.QueryOptions{Page: 1, Limit: 10})

	if filter["approved"] != true {
		t.Error("expected approved-only filter")
	}
	if _, ok := filter["$or"]; ok {
		t.Error("unexpected search clause without a search term")
	}
	if _, ok := filter["category_name"]; ok {
		t.Error("unexpected category clause")
	}
}

func TestBuildListFilterSearch(t *testing.T) {
	filter := buildListFilter(utils.QueryOptions{Page: 1, Limit: 10, Search: "hammam"})

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected two-field $or clause, got %v", filter["$or"])
	}
	name, ok := or[0]["name"].(bson.M)
	if !ok || name["$regex"] != "hammam" || name["$options"] != "i" {
		t.Errorf("expected case-insensitive name regex, got %v", or[0])
	}
}

func TestBuildListFilterCategoryAndFeatured(t *testing.T) {
	feat := true
	filter := buildListFilter(utils.QueryOptions{Page: 1, Limit: 10, Category: "Gardens", Featured: &feat})

	if filter["category_name"] != "Gardens" {
		t.Errorf("category_name = %v", filter["category_name"])
	}
	if filter["is_featured"] != true {
		t.Errorf("is_featured = %v", filter["is_featured"])
	}
}
