package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ncastellanos/propiedadesbackend/database"
	"github.com/ncastellanos/propiedadesbackend/models"
	"github.com/ncastellanos/propiedadesbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Filter parameters the search endpoint recognizes. All are optional and
// combine as an implicit AND. Parameter shape validation is the binding
// layer's concern; anything unparseable here silently drops out of the
// filter instead of failing the request.
var exactStringFilters = []string{"status", "type", "operation", "region", "cityArea"}
var exactIntFilters = []string{"dorms", "bathrooms", "parkingSpaces"}

// buildSearchFilter compiles the sparse query parameters into a single
// filter predicate.
func buildSearchFilter(q url.Values) bson.M {
	filter := bson.M{}

	for _, key := range exactStringFilters {
		if v := q.Get(key); v != "" {
			filter[key] = v
		}
	}

	if v := q.Get("condo"); v != "" {
		filter["condo"] = v == "true"
	}

	for _, key := range exactIntFilters {
		if v := q.Get(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter[key] = n
			}
		}
	}

	// Price range: $gte / $lte independently optional.
	price := bson.M{}
	if v := q.Get("minPrice"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			price["$gte"] = n
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			price["$lte"] = n
		}
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

// buildSearchSort maps sortBy/sortOrder onto a sort key. Only "price" is
// recognized today; the switch leaves room for more keys without touching
// the newest-first default.
func buildSearchSort(sortBy, sortOrder string) bson.D {
	order := -1
	if sortOrder == "asc" {
		order = 1
	}

	switch sortBy {
	case "price":
		return bson.D{{Key: "price", Value: order}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

type searchResponse struct {
	TotalFilteredProperties int64             `json:"totalFilteredProperties"`
	TotalPages              int               `json:"totalPages"`
	CurrentPage             int               `json:"currentPage"`
	PerPage                 int               `json:"perPage"`
	Properties              []models.Property `json:"properties"`
}

// GET /api/search
//
// With no parameters this is just the full listing, paginated.
func AdvancedSearch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		q := c.Request.URL.Query()

		page := utils.ParseIntDefault(q.Get("page"), 1)
		if page < 1 {
			page = 1
		}
		perPage := utils.ParseIntDefault(q.Get("perPage"), 10)
		if perPage < 1 {
			perPage = 10
		}
		skip := int64((page - 1) * perPage)

		cacheKey := utils.QueryCacheKey("search", flattenQuery(q))
		if utils.CacheEnabled() {
			var cached searchResponse
			if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		filter := buildSearchFilter(q)
		sort := buildSearchSort(q.Get("sortBy"), q.Get("sortOrder"))

		col := database.OpenCollection(propertiesCollection)

		// Count against the filter alone, before the pagination window.
		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			internalError(c, "count search results", err)
			return
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(perPage)).
			SetSort(sort)

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			internalError(c, "search properties", err)
			return
		}
		defer cursor.Close(ctx)

		properties := make([]models.Property, 0)
		if err := cursor.All(ctx, &properties); err != nil {
			internalError(c, "decode search results", err)
			return
		}

		resp := searchResponse{
			TotalFilteredProperties: total,
			TotalPages:              utils.TotalPages(total, perPage),
			CurrentPage:             page,
			PerPage:                 perPage,
			Properties:              properties,
		}

		if utils.CacheEnabled() {
			if err := utils.SetCached(ctx, cacheKey, resp, utils.SearchCacheTTL()); err != nil {
				log.Printf("search cache write failed: %v", err)
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// flattenQuery keeps the first value per key, which is all the search
// parameters use.
func flattenQuery(q url.Values) map[string]string {
	out := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
