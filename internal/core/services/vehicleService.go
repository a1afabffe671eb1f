package services

import (
	"context"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var sortWhitelist = []string{
	domain.SortModel,
	domain.SortYear,
	domain.SortBrandName,
	domain.SortLicensePlate,
}

type VehicleService struct {
	vehicleRepo  ports.VehicleRepository
	brandService *BrandService
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewVehicleService(
	vehicleRepo ports.VehicleRepository,
	brandService *BrandService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		brandService: brandService,
		logger:       logger,
		validate:     validate,
	}
}

// ListVehicles returns one page of the sorted vehicle listing. TotalPages
// carries the last page index, not the page count: the engine-reported
// count minus one. Clients depend on that value as-is.
func (s *VehicleService) ListVehicles(ctx context.Context, page, size int, sortField, direction string) (*domain.VehiclePage, error) {
	if !validSortField(sortField) {
		return nil, domain.InvalidArgument("invalid sort field: " + sortField)
	}

	result, err := s.vehicleRepo.FindAllSorted(ctx, page, size, sortField, direction)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error":      err.Error(),
			"page":       page,
			"sort_field": sortField,
		})
		return nil, err
	}

	result.TotalPages--
	return result, nil
}

func validSortField(sortField string) bool {
	for _, field := range sortWhitelist {
		if field == sortField {
			return true
		}
	}
	return false
}

// SearchVehicles matches the term as a substring against brand name,
// model and license plate. Same page envelope as ListVehicles.
func (s *VehicleService) SearchVehicles(ctx context.Context, term string, page, size int) (*domain.VehiclePage, error) {
	result, err := s.vehicleRepo.Search(ctx, term, page, size)
	if err != nil {
		s.logger.Error("Failed to search vehicles", map[string]interface{}{
			"error": err.Error(),
			"term":  term,
			"page":  page,
		})
		return nil, err
	}

	result.TotalPages--
	return result, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) CreateVehicle(ctx context.Context, input domain.VehicleInput) error {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return validationError(err)
	}

	exists, err := s.vehicleRepo.ExistsByLicensePlate(ctx, input.LicensePlate)
	if err != nil {
		s.logger.Error("Failed to check license plate", map[string]interface{}{
			"error":         err.Error(),
			"license_plate": input.LicensePlate,
		})
		return err
	}
	if exists {
		return domain.Conflict("a vehicle with that license plate already exists")
	}

	brand, err := s.brandService.ResolveBrand(ctx, input.BrandID)
	if err != nil {
		return err
	}

	vehicle := &domain.Vehicle{
		ID:           uuid.NewString(),
		Model:        input.Model,
		LicensePlate: input.LicensePlate,
		Color:        input.Color,
		Year:         input.Year,
		Brand:        brand,
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error":         err.Error(),
			"license_plate": input.LicensePlate,
		})
		return err
	}

	s.logger.Info("Vehicle created successfully", map[string]interface{}{
		"vehicle_id": vehicle.ID,
		"brand_id":   brand.ID,
	})

	return nil
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, input domain.VehicleInput) error {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return validationError(err)
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get vehicle for update", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
		return err
	}

	// Keeping the current plate is fine; taking another vehicle's is not.
	if input.LicensePlate != vehicle.LicensePlate {
		exists, err := s.vehicleRepo.ExistsByLicensePlate(ctx, input.LicensePlate)
		if err != nil {
			s.logger.Error("Failed to check license plate", map[string]interface{}{
				"error":         err.Error(),
				"license_plate": input.LicensePlate,
			})
			return err
		}
		if exists {
			return domain.Conflict("a vehicle with that license plate already exists")
		}
	}

	brand, err := s.brandService.ResolveBrand(ctx, input.BrandID)
	if err != nil {
		return err
	}

	vehicle.Model = input.Model
	vehicle.LicensePlate = input.LicensePlate
	vehicle.Color = input.Color
	vehicle.Year = input.Year
	vehicle.Brand = brand

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		s.logger.Error("Failed to update vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
		return err
	}

	s.logger.Info("Vehicle updated successfully", map[string]interface{}{
		"vehicle_id": id,
	})

	return nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	exists, err := s.vehicleRepo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to check vehicle existence", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
		return err
	}
	if !exists {
		return domain.NotFound("vehicle does not exist")
	}

	if err := s.vehicleRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
		return err
	}

	s.logger.Info("Vehicle deleted successfully", map[string]interface{}{
		"vehicle_id": id,
	})

	return nil
}
