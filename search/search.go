package search

import (
	"context"
	"net/http"
	"time"

	"menara/db"
	"menara/models"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/search/activities?q=...&category=...
func SearchActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	skip, limit := utils.ParsePagination(r, 20, 100)

	filter := bson.M{"approved": true}
	if category != "" {
		filter["category_name"] = category
	}

	if query != "" {
		if ids := lookupIDs(ctx, query); len(ids) > 0 {
			filter["activityid"] = bson.M{"$in": ids}
		} else {
			// index miss: fall back to a case-insensitive regex scan
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": query, "$options": "i"}},
				{"description": bson.M{"$regex": query, "$options": "i"}},
				{"comments": bson.M{"$regex": query, "$options": "i"}},
			}
		}
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).
		SetSort(bson.D{{Key: "average_rating", Value: -1}})

	results, err := utils.FindAndDecode[models.Activity](ctx, db.ActivitiesCollection, filter, findOpts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Search failed")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"ok": true, "count": len(results), "results": results})
}
