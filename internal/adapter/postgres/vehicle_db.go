package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
)

// sortColumns maps the whitelisted sort fields to the columns of the
// joined listing query. Values are interpolated into ORDER BY, so only
// entries of this map may ever reach the query text.
var sortColumns = map[string]string{
	domain.SortModel:        "v.vehicle_model",
	domain.SortYear:         "v.vehicle_year",
	domain.SortBrandName:    "b.brand_name",
	domain.SortLicensePlate: "v.vehicle_license_plate",
}

const vehicleColumns = `v.vehicle_id, v.vehicle_model, v.vehicle_license_plate, v.vehicle_color,
	v.vehicle_year, v.vehicle_created_date, b.brand_id, b.brand_name, b.brand_created_date`

const searchCondition = `b.brand_name LIKE '%' || $1 || '%'
	OR v.vehicle_model LIKE '%' || $1 || '%'
	OR v.vehicle_license_plate LIKE '%' || $1 || '%'`

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
	FROM vehicles v
	JOIN brands b ON b.brand_id = v.brand_id
	WHERE v.vehicle_id = $1`

	vehicle, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("vehicle does not exist")
	}
	if err != nil {
		return nil, storageError(err)
	}
	return vehicle, nil
}

// Save inserts or overwrites by primary key. The creation date is set by
// the insert only and scanned back into the record.
func (r *VehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `INSERT INTO vehicles (vehicle_id, vehicle_model, vehicle_license_plate, vehicle_color, vehicle_year, brand_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (vehicle_id) DO UPDATE SET
		vehicle_model = EXCLUDED.vehicle_model,
		vehicle_license_plate = EXCLUDED.vehicle_license_plate,
		vehicle_color = EXCLUDED.vehicle_color,
		vehicle_year = EXCLUDED.vehicle_year,
		brand_id = EXCLUDED.brand_id
	RETURNING vehicle_created_date`

	err := r.db.QueryRowContext(ctx, query,
		vehicle.ID,
		vehicle.Model,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.Year,
		vehicle.Brand.ID,
	).Scan(&vehicle.CreatedAt)
	if err != nil {
		return storageError(err)
	}
	return nil
}

func (r *VehicleRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM vehicles WHERE vehicle_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storageError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError(err)
	}
	if rowsAffected == 0 {
		return domain.NotFound("vehicle does not exist")
	}
	return nil
}

func (r *VehicleRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vehicles WHERE vehicle_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, storageError(err)
	}
	return exists, nil
}

func (r *VehicleRepository) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vehicles WHERE vehicle_license_plate = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, plate).Scan(&exists); err != nil {
		return false, storageError(err)
	}
	return exists, nil
}

// FindAllSorted pages through the full listing ordered by one of the
// whitelisted fields. Any direction other than asc sorts descending.
func (r *VehicleRepository) FindAllSorted(ctx context.Context, page, size int, sortField, direction string) (*domain.VehiclePage, error) {
	column, ok := sortColumns[sortField]
	if !ok {
		return nil, domain.InvalidArgument("invalid sort field: " + sortField)
	}

	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM vehicles`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, storageError(err)
	}

	query := `SELECT ` + vehicleColumns + `
	FROM vehicles v
	JOIN brands b ON b.brand_id = v.brand_id
	ORDER BY ` + column + ` ` + dir + `
	LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, size, page*size)
	if err != nil {
		return nil, storageError(err)
	}
	defer rows.Close()

	vehicles, err := collectVehicles(rows)
	if err != nil {
		return nil, storageError(err)
	}

	return &domain.VehiclePage{
		Vehicles:   vehicles,
		TotalPages: pageCount(total, size),
	}, nil
}

// Search pages through the vehicles whose brand name, model or license
// plate contains the term. Matching is case-sensitive, like the LIKE
// operator it rides on.
func (r *VehicleRepository) Search(ctx context.Context, term string, page, size int) (*domain.VehiclePage, error) {
	var total int
	countQuery := `SELECT COUNT(*)
	FROM vehicles v
	JOIN brands b ON b.brand_id = v.brand_id
	WHERE ` + searchCondition
	if err := r.db.QueryRowContext(ctx, countQuery, term).Scan(&total); err != nil {
		return nil, storageError(err)
	}

	query := `SELECT ` + vehicleColumns + `
	FROM vehicles v
	JOIN brands b ON b.brand_id = v.brand_id
	WHERE ` + searchCondition + `
	LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, term, size, page*size)
	if err != nil {
		return nil, storageError(err)
	}
	defer rows.Close()

	vehicles, err := collectVehicles(rows)
	if err != nil {
		return nil, storageError(err)
	}

	return &domain.VehiclePage{
		Vehicles:   vehicles,
		TotalPages: pageCount(total, size),
	}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{Brand: &domain.Brand{}}
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Model,
		&vehicle.LicensePlate,
		&vehicle.Color,
		&vehicle.Year,
		&vehicle.CreatedAt,
		&vehicle.Brand.ID,
		&vehicle.Brand.Name,
		&vehicle.Brand.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

func collectVehicles(rows *sql.Rows) ([]*domain.Vehicle, error) {
	vehicles := []*domain.Vehicle{}
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func pageCount(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
