package itinerary

import (
	"context"
	"time"

	"menara/db"
	"menara/models"
	"menara/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadCandidates snapshots the approved catalog as generation context. The
// pipeline works with zero, few or many rows; callers treat an error the
// same as an empty catalog.
func LoadCandidates(ctx context.Context) ([]models.CandidateActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "is_featured", Value: -1}, {Key: "average_rating", Value: -1}})
	activities, err := utils.FindAndDecode[models.Activity](ctx, db.ActivitiesCollection, bson.M{"approved": true}, findOpts)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.CandidateActivity, 0, len(activities))
	for _, a := range activities {
		candidates = append(candidates, models.CandidateActivity{
			ActivityID:  a.ActivityID,
			Name:        a.Name,
			Category:    a.CategoryName,
			Description: a.Description,
			Location:    a.StreetAddress,
			Rating:      a.AverageRating,
			Notes:       a.Comments,
			IsFeatured:  a.IsFeatured,
		})
	}
	return candidates, nil
}
