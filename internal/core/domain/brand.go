package domain

import (
	"time"
)

type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// BrandSummary is the public projection of a brand exposed by the list
// and get endpoints. Vehicles and timestamps stay internal.
type BrandSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BrandInput struct {
	Name string `json:"name" validate:"required,max=30,inventoryname"`
}

func (b *Brand) Summary() BrandSummary {
	return BrandSummary{
		ID:   b.ID,
		Name: b.Name,
	}
}
