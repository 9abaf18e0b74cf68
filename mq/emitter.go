package mq

import (
	"context"
	"encoding/json"
	"log"

	"menara/db"
	"menara/models"
	"menara/rdx"
	"menara/search"

	"go.mongodb.org/mongo-driver/bson"
)

const channel = "catalog-events"

// Emit publishes a catalog write event to Redis. Subscribers invalidate
// caches; failures are logged and swallowed so a dead Redis never blocks a
// write path.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartInvalidationWorker listens for catalog events and drops the affected
// cache entries. Run as a goroutine from main.
func StartInvalidationWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[InvalidationWorker] Listening for catalog events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[InvalidationWorker] Failed to parse event: %v", err)
			continue
		}

		switch event.EntityType {
		case "activity":
			rdx.RdxDel("activities")
			if event.EntityId != "" {
				rdx.RdxDel("activity:" + event.EntityId)
			}
			reindexActivity(ctx, event)
		case "category":
			rdx.RdxDel("categories")
		case "review":
			// review writes change the activity's average rating
			rdx.RdxDel("activities")
			if event.EntityId != "" {
				rdx.RdxDel("activity:" + event.EntityId)
			}
		}
	}
}

func reindexActivity(ctx context.Context, event models.Index) {
	if event.EntityId == "" {
		return
	}
	if event.Method == "DELETE" {
		search.UnindexActivity(ctx, event.EntityId)
		return
	}

	var activity models.Activity
	err := db.ActivitiesCollection.FindOne(ctx, bson.M{"activityid": event.EntityId}).Decode(&activity)
	if err != nil {
		log.Printf("[InvalidationWorker] Fetch for reindex failed: %v", err)
		return
	}
	search.UnindexActivity(ctx, event.EntityId)
	search.IndexActivity(ctx, activity)
}
