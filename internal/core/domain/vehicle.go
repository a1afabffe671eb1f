package domain

import (
	"time"
)

type Vehicle struct {
	ID           string    `json:"id"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"licensePlate"`
	Color        string    `json:"color"`
	Year         string    `json:"year"` // four digits, 19xx or 20xx, no arithmetic ever done on it
	CreatedAt    time.Time `json:"createdAt"`
	Brand        *Brand    `json:"brand"`
}

type VehicleInput struct {
	Model        string `json:"model" validate:"required,max=30,inventoryname"`
	LicensePlate string `json:"licensePlate" validate:"required,min=5,max=6,licenseplate"`
	Color        string `json:"color" validate:"required,max=20,colorname"`
	Year         string `json:"year" validate:"required,vehicleyear"`
	BrandID      string `json:"brandId" validate:"required"`
}

// VehiclePage is one slice of a paged vehicle result set.
type VehiclePage struct {
	Vehicles   []*Vehicle `json:"vehicles"`
	TotalPages int        `json:"totalPages"`
}

// Sort fields accepted by the paged vehicle listing. Callers ask for
// "brand"; the transport layer remaps it to SortBrandName before it
// reaches the service.
const (
	SortModel        = "model"
	SortYear         = "year"
	SortBrandName    = "brand.name"
	SortLicensePlate = "licensePlate"
)
