package utils

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

type QueryOptions struct {
	Page     int
	Limit    int
	Category string
	Featured *bool
	Search   string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	var featured *bool
	if featStr := q.Get("featured"); featStr != "" {
		val := featStr == "true"
		featured = &val
	}

	return QueryOptions{
		Page:     page,
		Limit:    limit,
		Category: q.Get("category"),
		Featured: featured,
		Search:   q.Get("search"),
	}
}

// ParsePagination returns skip and limit suitable for mongo Find options.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) (int64, int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, limit
}

// ParseSort maps a query value like "rating" or "-created" to a mongo sort
// document, falling back to def when the value is unknown.
func ParseSort(value string, def bson.D, allowed map[string]bson.D) bson.D {
	if value == "" {
		return def
	}
	if allowed != nil {
		if sort, ok := allowed[value]; ok {
			return sort
		}
		return def
	}
	dir := 1
	if value[0] == '-' {
		dir = -1
		value = value[1:]
	}
	if value == "" {
		return def
	}
	return bson.D{{Key: value, Value: dir}}
}
