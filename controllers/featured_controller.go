package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncastellanos/propiedadesbackend/database"
	"github.com/ncastellanos/propiedadesbackend/dto"
	"github.com/ncastellanos/propiedadesbackend/models"
	"github.com/ncastellanos/propiedadesbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const featuredCollection = "featured"

// GET /api/featured
func GetFeaturedCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(featuredCollection)

		page := utils.ParseIntDefault(c.Query("page"), 1)
		if page < 1 {
			page = 1
		}
		perPage := utils.ParseIntDefault(c.Query("perPage"), 10)
		if perPage < 1 {
			perPage = 10
		}
		skip := int64((page - 1) * perPage)

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(perPage)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			internalError(c, "list categories", err)
			return
		}
		defer cursor.Close(ctx)

		categories := make([]models.Featured, 0)
		if err := cursor.All(ctx, &categories); err != nil {
			internalError(c, "decode categories", err)
			return
		}

		total, err := col.CountDocuments(ctx, bson.M{})
		if err != nil {
			internalError(c, "count categories", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":       total,
			"totalPages":  utils.TotalPages(total, perPage),
			"currentPage": page,
			"perPage":     perPage,
			"categories":  categories,
		})
	}
}

// GET /api/featured/search/:slug
//
// Prefix match against the slug, case-insensitive, with member properties
// resolved into full documents.
func SearchFeaturedBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(featuredCollection)

		term := strings.TrimSpace(c.Param("slug"))
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search term is required"})
			return
		}

		filter := bson.M{"slug": bson.M{
			"$regex":   "^" + regexp.QuoteMeta(term),
			"$options": "i",
		}}

		cursor, err := col.Find(ctx, filter)
		if err != nil {
			internalError(c, "search categories", err)
			return
		}
		defer cursor.Close(ctx)

		var matches []models.Featured
		if err := cursor.All(ctx, &matches); err != nil {
			internalError(c, "decode categories", err)
			return
		}

		if len(matches) == 0 {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no categories match the search term",
				"term":  term,
			})
			return
		}

		populated := make([]models.PopulatedFeatured, 0, len(matches))
		for _, m := range matches {
			p, err := populateFeatured(ctx, m)
			if err != nil {
				internalError(c, "resolve category members", err)
				return
			}
			populated = append(populated, p)
		}

		c.JSON(http.StatusOK, gin.H{
			"term":       term,
			"matchCount": len(populated),
			"categories": populated,
		})
	}
}

// GET /api/featured/:id
func GetFeaturedCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(featuredCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		var cat models.Featured
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, cat)
	}
}

// POST /api/featured
func AddFeaturedCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(featuredCollection)

		var body dto.CreateFeaturedDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		name := strings.TrimSpace(body.CategoryName)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryName is required"})
			return
		}

		// Duplicate check is by exact name, not slug.
		err := col.FindOne(ctx, bson.M{"name": name}).Err()
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "category name already exists", "field": "categoryName"})
			return
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			internalError(c, "check category name", err)
			return
		}

		now := time.Now().UTC()
		doc := models.Featured{
			Name:        name,
			Slug:        utils.GenerateSlug(name),
			PropertyIds: []bson.ObjectID{},
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "category name already exists", "field": "categoryName"})
				return
			}
			internalError(c, "create category", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":   res.InsertedID,
			"name": doc.Name,
			"slug": doc.Slug,
		})
	}
}

// featuredUpdateDoc translates the partial-edit payload into a $set
// document. categoryName is not a stored field: when present it becomes a
// new name plus a slug regenerated with the permissive algorithm.
func featuredUpdateDoc(body dto.UpdateFeaturedDTO) bson.M {
	set := bson.M{}
	if body.CategoryName != nil {
		name := strings.TrimSpace(*body.CategoryName)
		if name != "" {
			set["name"] = name
			set["slug"] = utils.NormalizeSlug(name)
		}
	}
	if body.IsActive != nil {
		set["isActive"] = *body.IsActive
	}
	return set
}

// PATCH /api/featured/:id
func UpdateFeaturedCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(featuredCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		var body dto.UpdateFeaturedDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := featuredUpdateDoc(body)
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}
		set["updatedAt"] = time.Now().UTC()

		res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "category name already exists", "field": "categoryName"})
				return
			}
			internalError(c, "update category", err)
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		var cat models.Featured
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
			internalError(c, "reload category", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       cat.Id,
			"name":     cat.Name,
			"slug":     cat.Slug,
			"isActive": cat.IsActive,
		})
	}
}

// DELETE /api/featured/:id
//
// Removes the category document only; member properties are never
// touched.
func DeleteFeaturedCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(featuredCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			internalError(c, "delete category", err)
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
