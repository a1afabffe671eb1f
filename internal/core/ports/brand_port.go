package ports

import (
	"context"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
)

type BrandRepository interface {
	FindAll(ctx context.Context) ([]*domain.Brand, error)
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	FindByName(ctx context.Context, name string) (*domain.Brand, error)
	Save(ctx context.Context, brand *domain.Brand) error
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type BrandService interface {
	ListBrands(ctx context.Context) ([]domain.BrandSummary, error)
	GetBrand(ctx context.Context, id string) (*domain.BrandSummary, error)
	ResolveBrand(ctx context.Context, id string) (*domain.Brand, error)
	CreateBrand(ctx context.Context, input domain.BrandInput) error
	UpdateBrand(ctx context.Context, id string, input domain.BrandInput) error
	DeleteBrand(ctx context.Context, id string) error
}
