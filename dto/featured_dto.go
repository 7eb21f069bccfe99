package dto

// CreateFeaturedDTO is the create-category payload. The slug is always
// derived from the name, never accepted from the client.
type CreateFeaturedDTO struct {
	CategoryName string `json:"categoryName" binding:"required"`
}

// UpdateFeaturedDTO — all fields are optional pointers. categoryName is
// not itself a persisted field: when present it is translated into a new
// name plus a regenerated slug before the update is applied.
type UpdateFeaturedDTO struct {
	CategoryName *string `json:"categoryName,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// AssignPropertiesDTO is the bulk-assign payload.
type AssignPropertiesDTO struct {
	PropertyIds []string `json:"propertyIds" binding:"required,min=1"`
}
