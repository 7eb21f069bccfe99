package controllers

import (
	"errors"
	"fmt"
	"net/http"
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

const propertiesCollection = "properties"

// propertyFromCreate validates what the binding tags cannot express and
// builds the document to insert.
func propertyFromCreate(body dto.CreatePropertyDTO) (models.Property, error) {
	if !models.IsValidRegion(body.Region) {
		return models.Property{}, fmt.Errorf("invalid region %q", body.Region)
	}
	if len(body.ImageUrls) < models.MinPropertyImages {
		return models.Property{}, fmt.Errorf("at least %d images are required", models.MinPropertyImages)
	}

	status := body.Status
	if status == "" {
		status = string(models.StatusDisponible)
	}

	now := time.Now().UTC()
	return models.Property{
		Title:         strings.TrimSpace(body.Title),
		Description:   strings.TrimSpace(body.Description),
		Type:          models.PropertyType(body.Type),
		Operation:     models.PropertyOperation(body.Operation),
		Price:         body.Price,
		Address:       strings.TrimSpace(body.Address),
		Status:        models.PropertyStatus(status),
		Dorms:         body.Dorms,
		Bathrooms:     body.Bathrooms,
		ParkingSpaces: body.ParkingSpaces,
		Area:          body.Area,
		Region:        body.Region,
		CityArea:      strings.TrimSpace(body.CityArea),
		Condo:         body.Condo,
		ImageUrls:     body.ImageUrls,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// POST /api/property/create
func CreateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(propertiesCollection)

		var body dto.CreatePropertyDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		property, err := propertyFromCreate(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := col.InsertOne(ctx, property)
		if err != nil {
			internalError(c, "create property", err)
			return
		}

		property.Id = res.InsertedID.(bson.ObjectID)
		c.JSON(http.StatusCreated, property)
	}
}

// GET /api/property
func GetProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(propertiesCollection)

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
			internalError(c, "list properties", err)
			return
		}
		defer cursor.Close(ctx)

		properties := make([]models.Property, 0)
		if err := cursor.All(ctx, &properties); err != nil {
			internalError(c, "decode properties", err)
			return
		}

		total, err := col.CountDocuments(ctx, bson.M{})
		if err != nil {
			internalError(c, "count properties", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":       total,
			"totalPages":  utils.TotalPages(total, perPage),
			"currentPage": page,
			"perPage":     perPage,
			"properties":  properties,
		})
	}
}

// GET /api/property/:id
func GetProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(propertiesCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}

		var property models.Property
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
				return
			}
			internalError(c, "fetch property", err)
			return
		}

		c.JSON(http.StatusOK, property)
	}
}

// propertyUpdateDoc translates the optional-field payload into a $set
// document. Returns an error for values the binding tags let through but
// the model rejects.
func propertyUpdateDoc(body dto.UpdatePropertyDTO) (bson.M, error) {
	set := bson.M{}

	if body.Title != nil {
		set["title"] = strings.TrimSpace(*body.Title)
	}
	if body.Description != nil {
		set["description"] = strings.TrimSpace(*body.Description)
	}
	if body.Type != nil {
		set["type"] = *body.Type
	}
	if body.Operation != nil {
		set["operation"] = *body.Operation
	}
	if body.Price != nil {
		set["price"] = *body.Price
	}
	if body.Address != nil {
		set["address"] = strings.TrimSpace(*body.Address)
	}
	if body.Status != nil {
		set["status"] = *body.Status
	}
	if body.Dorms != nil {
		set["dorms"] = *body.Dorms
	}
	if body.Bathrooms != nil {
		set["bathrooms"] = *body.Bathrooms
	}
	if body.ParkingSpaces != nil {
		set["parkingSpaces"] = *body.ParkingSpaces
	}
	if body.Area != nil {
		set["area"] = *body.Area
	}
	if body.Region != nil {
		if !models.IsValidRegion(*body.Region) {
			return nil, fmt.Errorf("invalid region %q", *body.Region)
		}
		set["region"] = *body.Region
	}
	if body.CityArea != nil {
		set["cityArea"] = strings.TrimSpace(*body.CityArea)
	}
	if body.Condo != nil {
		set["condo"] = *body.Condo
	}
	if body.ImageUrls != nil {
		if len(*body.ImageUrls) < models.MinPropertyImages {
			return nil, fmt.Errorf("at least %d images are required", models.MinPropertyImages)
		}
		set["imageUrls"] = *body.ImageUrls
	}

	return set, nil
}

// PATCH /api/property/:id
func UpdateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(propertiesCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}

		var body dto.UpdatePropertyDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set, err := propertyUpdateDoc(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}
		set["updatedAt"] = time.Now().UTC()

		res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			internalError(c, "update property", err)
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}

		var property models.Property
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
			internalError(c, "reload property", err)
			return
		}

		c.JSON(http.StatusOK, property)
	}
}

// DELETE /api/property/:id
//
// Categories referencing the property are not rewritten; stale member
// ids are filtered out when a category is populated on read.
func DeleteProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection(propertiesCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			internalError(c, "delete property", err)
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
