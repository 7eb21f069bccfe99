package dto

// CreatePropertyDTO carries the full property payload. Enum membership,
// region validity and the minimum image count are checked again before
// persistence; binding tags reject the obvious shape errors first.
type CreatePropertyDTO struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=casa departamento parcela sitio oficina comercial"`
	Operation     string   `json:"operation" binding:"required,oneof='En Arriendo' 'En Venta'"`
	Price         int      `json:"price" binding:"required,gte=0"`
	Address       string   `json:"address" binding:"required"`
	Status        string   `json:"status" binding:"omitempty,oneof=disponible vendida pendiente"`
	Dorms         int      `json:"dorms" binding:"gte=0"`
	Bathrooms     int      `json:"bathrooms" binding:"gte=0"`
	ParkingSpaces int      `json:"parkingSpaces" binding:"gte=0"`
	Area          float64  `json:"area" binding:"required,gte=0"`
	Region        string   `json:"region" binding:"required"`
	CityArea      string   `json:"cityArea" binding:"required"`
	Condo         bool     `json:"condo"`
	ImageUrls     []string `json:"imageUrls" binding:"required,min=4,dive,url"`
}

// UpdatePropertyDTO — all fields are optional pointers
type UpdatePropertyDTO struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Type          *string   `json:"type,omitempty" binding:"omitempty,oneof=casa departamento parcela sitio oficina comercial"`
	Operation     *string   `json:"operation,omitempty" binding:"omitempty,oneof='En Arriendo' 'En Venta'"`
	Price         *int      `json:"price,omitempty" binding:"omitempty,gte=0"`
	Address       *string   `json:"address,omitempty"`
	Status        *string   `json:"status,omitempty" binding:"omitempty,oneof=disponible vendida pendiente"`
	Dorms         *int      `json:"dorms,omitempty" binding:"omitempty,gte=0"`
	Bathrooms     *int      `json:"bathrooms,omitempty" binding:"omitempty,gte=0"`
	ParkingSpaces *int      `json:"parkingSpaces,omitempty" binding:"omitempty,gte=0"`
	Area          *float64  `json:"area,omitempty" binding:"omitempty,gte=0"`
	Region        *string   `json:"region,omitempty"`
	CityArea      *string   `json:"cityArea,omitempty"`
	Condo         *bool     `json:"condo,omitempty"`
	ImageUrls     *[]string `json:"imageUrls,omitempty" binding:"omitempty,min=4,dive,url"`
}
