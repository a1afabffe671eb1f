package postgres

import (
	"context"
	"database/sql"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
)

type BrandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) *BrandRepository {
	return &BrandRepository{
		db,
	}
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]*domain.Brand, error) {
	query := `SELECT brand_id, brand_name, brand_created_date
              FROM brands ORDER BY brand_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError(err)
	}
	defer rows.Close()

	brands := []*domain.Brand{}
	for rows.Next() {
		brand := &domain.Brand{}
		if err := rows.Scan(&brand.ID, &brand.Name, &brand.CreatedAt); err != nil {
			return nil, storageError(err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err)
	}
	return brands, nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	query := `SELECT brand_id, brand_name, brand_created_date
              FROM brands WHERE brand_id = $1`

	brand := &domain.Brand{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&brand.ID, &brand.Name, &brand.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("brand does not exist")
	}
	if err != nil {
		return nil, storageError(err)
	}
	return brand, nil
}

func (r *BrandRepository) FindByName(ctx context.Context, name string) (*domain.Brand, error) {
	query := `SELECT brand_id, brand_name, brand_created_date
              FROM brands WHERE brand_name = $1`

	brand := &domain.Brand{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&brand.ID, &brand.Name, &brand.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("brand does not exist")
	}
	if err != nil {
		return nil, storageError(err)
	}
	return brand, nil
}

// Save inserts or, when the id already exists, overwrites the name. The
// creation date is written once by the insert and scanned back.
func (r *BrandRepository) Save(ctx context.Context, brand *domain.Brand) error {
	query := `INSERT INTO brands (brand_id, brand_name)
	VALUES ($1, $2)
	ON CONFLICT (brand_id) DO UPDATE SET brand_name = EXCLUDED.brand_name
	RETURNING brand_created_date`

	err := r.db.QueryRowContext(ctx, query, brand.ID, brand.Name).Scan(&brand.CreatedAt)
	if err != nil {
		return storageError(err)
	}
	return nil
}

func (r *BrandRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM brands WHERE brand_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storageError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError(err)
	}
	if rowsAffected == 0 {
		return domain.NotFound("brand does not exist")
	}
	return nil
}

func (r *BrandRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM brands WHERE brand_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, storageError(err)
	}
	return exists, nil
}
