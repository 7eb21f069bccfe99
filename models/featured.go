package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Featured is a curated category of properties. PropertyIds is a set:
// a property id appears at most once, enforced through $addToSet/$pull
// updates only.
type Featured struct {
	Id          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Slug        string          `bson:"slug" json:"slug"`
	PropertyIds []bson.ObjectID `bson:"properties" json:"properties"`
	IsActive    bool            `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedFeatured is the read shape with member properties resolved
// into full documents. Its Properties field shadows the embedded id list
// in the JSON output.
type PopulatedFeatured struct {
	Featured   `bson:",inline"`
	Properties []Property `bson:"-" json:"properties"`
}
