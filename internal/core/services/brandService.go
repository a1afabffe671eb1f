package services

import (
	"context"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BrandService struct {
	brandRepo ports.BrandRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
}

func NewBrandService(
	brandRepo ports.BrandRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
		logger:    logger,
		validate:  validate,
	}
}

func (s *BrandService) ListBrands(ctx context.Context) ([]domain.BrandSummary, error) {
	brands, err := s.brandRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list brands", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	summaries := make([]domain.BrandSummary, len(brands))
	for i, brand := range brands {
		summaries[i] = brand.Summary()
	}

	return summaries, nil
}

func (s *BrandService) GetBrand(ctx context.Context, id string) (*domain.BrandSummary, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get brand", map[string]interface{}{
			"error":    err.Error(),
			"brand_id": id,
		})
		return nil, err
	}

	summary := brand.Summary()
	return &summary, nil
}

// ResolveBrand returns the full stored brand. The vehicle service uses it
// to turn a submitted brandId into the referenced record.
func (s *BrandService) ResolveBrand(ctx context.Context, id string) (*domain.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to resolve brand", map[string]interface{}{
			"error":    err.Error(),
			"brand_id": id,
		})
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) CreateBrand(ctx context.Context, input domain.BrandInput) error {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Brand validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return validationError(err)
	}

	existing, err := s.brandRepo.FindByName(ctx, input.Name)
	if err != nil && !domain.IsNotFound(err) {
		s.logger.Error("Failed to check brand name", map[string]interface{}{
			"error": err.Error(),
			"name":  input.Name,
		})
		return err
	}
	if existing != nil {
		return domain.Conflict("a brand with that name already exists")
	}

	brand := &domain.Brand{
		ID:   uuid.NewString(),
		Name: input.Name,
	}
	if err := s.brandRepo.Save(ctx, brand); err != nil {
		s.logger.Error("Failed to create brand", map[string]interface{}{
			"error": err.Error(),
			"name":  input.Name,
		})
		return err
	}

	s.logger.Info("Brand created successfully", map[string]interface{}{
		"brand_id": brand.ID,
		"name":     brand.Name,
	})

	return nil
}

func (s *BrandService) UpdateBrand(ctx context.Context, id string, input domain.BrandInput) error {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Brand validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return validationError(err)
	}

	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get brand for update", map[string]interface{}{
			"error":    err.Error(),
			"brand_id": id,
		})
		return err
	}

	existing, err := s.brandRepo.FindByName(ctx, input.Name)
	if err != nil && !domain.IsNotFound(err) {
		s.logger.Error("Failed to check brand name", map[string]interface{}{
			"error": err.Error(),
			"name":  input.Name,
		})
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.Conflict("a brand with that name already exists")
	}

	brand.Name = input.Name
	if err := s.brandRepo.Save(ctx, brand); err != nil {
		s.logger.Error("Failed to update brand", map[string]interface{}{
			"error":    err.Error(),
			"brand_id": id,
		})
		return err
	}

	s.logger.Info("Brand updated successfully", map[string]interface{}{
		"brand_id": id,
	})

	return nil
}

// DeleteBrand removes the brand; the schema cascades the delete to every
// vehicle referencing it.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	exists, err := s.brandRepo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to check brand existence", map[string]interface{}{
			"error":    err.Error(),
			"brand_id": id,
		})
		return err
	}
	if !exists {
		return domain.NotFound("brand does not exist")
	}

	if err := s.brandRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Failed to delete brand", map[string]interface{}{
			"error":    err.Error(),
			"brand_id": id,
		})
		return err
	}

	s.logger.Info("Brand deleted successfully", map[string]interface{}{
		"brand_id": id,
	})

	return nil
}
