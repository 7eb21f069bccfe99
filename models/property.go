package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PropertyType string

const (
	PropertyTypeCasa         PropertyType = "casa"
	PropertyTypeDepartamento PropertyType = "departamento"
	PropertyTypeParcela      PropertyType = "parcela"
	PropertyTypeSitio        PropertyType = "sitio"
	PropertyTypeOficina      PropertyType = "oficina"
	PropertyTypeComercial    PropertyType = "comercial"
)

type PropertyOperation string

const (
	OperationArriendo PropertyOperation = "En Arriendo"
	OperationVenta    PropertyOperation = "En Venta"
)

type PropertyStatus string

const (
	StatusDisponible PropertyStatus = "disponible"
	StatusVendida    PropertyStatus = "vendida"
	StatusPendiente  PropertyStatus = "pendiente"
)

// Regions is the fixed list of Chilean administrative regions a property
// can belong to, north to south.
var Regions = []string{
	"Arica y Parinacota",
	"Tarapacá",
	"Antofagasta",
	"Atacama",
	"Coquimbo",
	"Valparaíso",
	"Metropolitana de Santiago",
	"O'Higgins",
	"Maule",
	"Ñuble",
	"Biobío",
	"La Araucanía",
	"Los Ríos",
	"Los Lagos",
	"Aysén",
	"Magallanes",
}

// MinPropertyImages is enforced before persistence.
const MinPropertyImages = 4

type Property struct {
	Id            bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title         string            `bson:"title" json:"title"`
	Description   string            `bson:"description" json:"description"`
	Type          PropertyType      `bson:"type" json:"type"`
	Operation     PropertyOperation `bson:"operation" json:"operation"`
	Price         int               `bson:"price" json:"price"` // in Chilean UF
	Address       string            `bson:"address" json:"address"`
	Status        PropertyStatus    `bson:"status" json:"status"`
	Dorms         int               `bson:"dorms" json:"dorms"`
	Bathrooms     int               `bson:"bathrooms" json:"bathrooms"`
	ParkingSpaces int               `bson:"parkingSpaces" json:"parkingSpaces"`
	Area          float64           `bson:"area" json:"area"` // square meters
	Region        string            `bson:"region" json:"region"`
	CityArea      string            `bson:"cityArea" json:"cityArea"`
	Condo         bool              `bson:"condo" json:"condo"`
	ImageUrls     []string          `bson:"imageUrls" json:"imageUrls"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

func IsValidPropertyType(v string) bool {
	switch PropertyType(v) {
	case PropertyTypeCasa, PropertyTypeDepartamento, PropertyTypeParcela,
		PropertyTypeSitio, PropertyTypeOficina, PropertyTypeComercial:
		return true
	}
	return false
}

func IsValidOperation(v string) bool {
	switch PropertyOperation(v) {
	case OperationArriendo, OperationVenta:
		return true
	}
	return false
}

func IsValidStatus(v string) bool {
	switch PropertyStatus(v) {
	case StatusDisponible, StatusVendida, StatusPendiente:
		return true
	}
	return false
}

func IsValidRegion(v string) bool {
	for _, r := range Regions {
		if r == v {
			return true
		}
	}
	return false
}
