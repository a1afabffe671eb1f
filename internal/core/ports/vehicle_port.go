package ports

import (
	"context"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
)

type VehicleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByLicensePlate(ctx context.Context, plate string) (bool, error)
	FindAllSorted(ctx context.Context, page, size int, sortField, direction string) (*domain.VehiclePage, error)
	Search(ctx context.Context, term string, page, size int) (*domain.VehiclePage, error)
}

type VehicleService interface {
	ListVehicles(ctx context.Context, page, size int, sortField, direction string) (*domain.VehiclePage, error)
	SearchVehicles(ctx context.Context, term string, page, size int) (*domain.VehiclePage, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, input domain.VehicleInput) error
	UpdateVehicle(ctx context.Context, id string, input domain.VehicleInput) error
	DeleteVehicle(ctx context.Context, id string) error
}
