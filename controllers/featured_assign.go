package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncastellanos/propiedadesbackend/database"
	"github.com/ncastellanos/propiedadesbackend/dto"
	"github.com/ncastellanos/propiedadesbackend/models"
	"github.com/ncastellanos/propiedadesbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// containsID reports membership of id in the stored member list.
func containsID(list []bson.ObjectID, id bson.ObjectID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

// dedupeIDs drops repeated ids, keeping first-occurrence order.
func dedupeIDs(ids []bson.ObjectID) []bson.ObjectID {
	seen := make(map[bson.ObjectID]struct{}, len(ids))
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// splitNewMembers partitions the requested ids into those not yet in the
// member list and a count of the ones already there. For a deduplicated
// request, len(new) + skipped == len(requested).
func splitNewMembers(current, requested []bson.ObjectID) ([]bson.ObjectID, int) {
	newOnes := make([]bson.ObjectID, 0, len(requested))
	skipped := 0
	for _, id := range requested {
		if containsID(current, id) {
			skipped++
			continue
		}
		newOnes = append(newOnes, id)
	}
	return newOnes, skipped
}

// missingIDs returns the hex ids in requested that are absent from found.
func missingIDs(requested, found []bson.ObjectID) []string {
	foundSet := make(map[bson.ObjectID]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}
	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id.Hex())
		}
	}
	return missing
}

// populateFeatured resolves the member id list into full property
// documents, preserving the stored order. Ids that no longer resolve are
// dropped from the view; the stored list is left as is.
func populateFeatured(ctx context.Context, cat models.Featured) (models.PopulatedFeatured, error) {
	out := models.PopulatedFeatured{Featured: cat, Properties: make([]models.Property, 0, len(cat.PropertyIds))}
	if len(cat.PropertyIds) == 0 {
		return out, nil
	}

	col := database.OpenCollection(propertiesCollection)
	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": cat.PropertyIds}})
	if err != nil {
		return out, err
	}
	defer cursor.Close(ctx)

	var docs []models.Property
	if err := cursor.All(ctx, &docs); err != nil {
		return out, err
	}

	byID := make(map[bson.ObjectID]models.Property, len(docs))
	for _, p := range docs {
		byID[p.Id] = p
	}
	for _, id := range cat.PropertyIds {
		if p, ok := byID[id]; ok {
			out.Properties = append(out.Properties, p)
		}
	}
	return out, nil
}

func loadFeatured(c *gin.Context) (models.Featured, bool) {
	var cat models.Featured

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return cat, false
	}

	col := database.OpenCollection(featuredCollection)
	if err := col.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&cat); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return cat, false
	}
	return cat, true
}

// POST /api/featured/:id/properties/:propertyId
func AssignProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cat, ok := loadFeatured(c)
		if !ok {
			return
		}

		propID, err := bson.ObjectIDFromHex(c.Param("propertyId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}

		propsCol := database.OpenCollection(propertiesCollection)
		if err := propsCol.FindOne(ctx, bson.M{"_id": propID}).Err(); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}

		if containsID(cat.PropertyIds, propID) {
			c.JSON(http.StatusConflict, gin.H{"error": "property already assigned to this category"})
			return
		}

		// $addToSet keeps the member list duplicate-free even if a
		// concurrent assign slips past the membership check above.
		col := database.OpenCollection(featuredCollection)
		_, err = col.UpdateByID(ctx, cat.Id, bson.M{
			"$addToSet": bson.M{"properties": propID},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
		})
		if err != nil {
			internalError(c, "assign property", err)
			return
		}

		respondWithPopulated(c, cat.Id)
	}
}

// DELETE /api/featured/:id/properties/:propertyId
func UnassignProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cat, ok := loadFeatured(c)
		if !ok {
			return
		}

		propID, err := bson.ObjectIDFromHex(c.Param("propertyId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}

		propsCol := database.OpenCollection(propertiesCollection)
		if err := propsCol.FindOne(ctx, bson.M{"_id": propID}).Err(); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}

		if !containsID(cat.PropertyIds, propID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property is not assigned to this category"})
			return
		}

		col := database.OpenCollection(featuredCollection)
		_, err = col.UpdateByID(ctx, cat.Id, bson.M{
			"$pull": bson.M{"properties": propID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
		if err != nil {
			internalError(c, "unassign property", err)
			return
		}

		respondWithPopulated(c, cat.Id)
	}
}

// POST /api/featured/:id/properties
//
// Bulk assignment is all-or-nothing: every requested id must resolve to
// an existing property before anything is written, and a request where
// every id is already a member is rejected rather than silently
// succeeding.
func AssignProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cat, ok := loadFeatured(c)
		if !ok {
			return
		}

		var body dto.AssignPropertiesDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		requested, err := utils.StringsToObjectIDs(body.PropertyIds)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id in list"})
			return
		}
		requested = dedupeIDs(requested)

		propsCol := database.OpenCollection(propertiesCollection)
		cursor, err := propsCol.Find(ctx, bson.M{"_id": bson.M{"$in": requested}})
		if err != nil {
			internalError(c, "resolve properties", err)
			return
		}
		var existing []models.Property
		if err := cursor.All(ctx, &existing); err != nil {
			internalError(c, "decode properties", err)
			return
		}

		existingIDs := make([]bson.ObjectID, 0, len(existing))
		for _, p := range existing {
			existingIDs = append(existingIDs, p.Id)
		}

		if notFound := missingIDs(requested, existingIDs); len(notFound) > 0 {
			c.JSON(http.StatusNotFound, gin.H{
				"error":       "some properties do not exist",
				"notFoundIds": notFound,
			})
			return
		}

		newOnes, skipped := splitNewMembers(cat.PropertyIds, requested)
		if len(newOnes) == 0 {
			c.JSON(http.StatusConflict, gin.H{
				"error":        "all properties are already assigned to this category",
				"skippedCount": skipped,
			})
			return
		}

		col := database.OpenCollection(featuredCollection)
		_, err = col.UpdateByID(ctx, cat.Id, bson.M{
			"$addToSet": bson.M{"properties": bson.M{"$each": newOnes}},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
		})
		if err != nil {
			internalError(c, "bulk assign properties", err)
			return
		}

		var updated models.Featured
		if err := col.FindOne(ctx, bson.M{"_id": cat.Id}).Decode(&updated); err != nil {
			internalError(c, "reload category", err)
			return
		}
		populated, err := populateFeatured(ctx, updated)
		if err != nil {
			internalError(c, "resolve category members", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"assignedCount": len(newOnes),
			"skippedCount":  skipped,
			"category":      populated,
		})
	}
}

func respondWithPopulated(c *gin.Context, id bson.ObjectID) {
	ctx := c.Request.Context()
	col := database.OpenCollection(featuredCollection)

	var cat models.Featured
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		internalError(c, "reload category", err)
		return
	}

	populated, err := populateFeatured(ctx, cat)
	if err != nil {
		internalError(c, "resolve category members", err)
		return
	}

	c.JSON(http.StatusOK, populated)
}
