package search

import (
	"context"
	"log"
	"strings"

	"menara/models"
	"menara/rdx"
)

const indexPrefix = "idx:activity:"

// IndexActivity adds the activity's id to the inverted-index set of every
// token in its searchable text.
func IndexActivity(ctx context.Context, activity models.Activity) {
	text := strings.Join([]string{activity.Name, activity.Description, activity.CategoryName, activity.Comments}, " ")
	for _, token := range Tokenize(text) {
		if err := rdx.Conn.SAdd(ctx, indexPrefix+token, activity.ActivityID).Err(); err != nil {
			log.Printf("[Index] SAdd %q failed: %v", token, err)
			return
		}
	}
}

// UnindexActivity removes the id from every token set it may appear in.
// Token sets are enumerated by pattern; acceptable at catalog scale.
func UnindexActivity(ctx context.Context, activityID string) {
	keys, err := rdx.Conn.Keys(ctx, indexPrefix+"*").Result()
	if err != nil {
		log.Printf("[Index] Keys scan failed: %v", err)
		return
	}
	for _, key := range keys {
		rdx.Conn.SRem(ctx, key, activityID)
	}
}

// lookupIDs intersects the token sets for a query. Empty result means the
// index has no answer; the caller falls back to a direct store query.
func lookupIDs(ctx context.Context, query string) []string {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = indexPrefix + t
	}
	ids, err := rdx.Conn.SInter(ctx, keys...).Result()
	if err != nil {
		log.Printf("[Index] SInter failed: %v", err)
		return nil
	}
	return ids
}
