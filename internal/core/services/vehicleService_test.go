package services

import (
	"context"
	"testing"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVehicleRepo struct {
	vehicles   []*domain.Vehicle
	totalPages int

	lastPage int
	lastSize int
	lastSort string
	lastDir  string
	lastTerm string
}

func (f *fakeVehicleRepo) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.NotFound("vehicle does not exist")
}

func (f *fakeVehicleRepo) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	for i, v := range f.vehicles {
		if v.ID == vehicle.ID {
			f.vehicles[i] = vehicle
			return nil
		}
	}
	f.vehicles = append(f.vehicles, vehicle)
	return nil
}

func (f *fakeVehicleRepo) DeleteByID(ctx context.Context, id string) error {
	for i, v := range f.vehicles {
		if v.ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return domain.NotFound("vehicle does not exist")
}

func (f *fakeVehicleRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVehicleRepo) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	for _, v := range f.vehicles {
		if v.LicensePlate == plate {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVehicleRepo) FindAllSorted(ctx context.Context, page, size int, sortField, direction string) (*domain.VehiclePage, error) {
	f.lastPage, f.lastSize, f.lastSort, f.lastDir = page, size, sortField, direction
	return &domain.VehiclePage{Vehicles: f.vehicles, TotalPages: f.totalPages}, nil
}

func (f *fakeVehicleRepo) Search(ctx context.Context, term string, page, size int) (*domain.VehiclePage, error) {
	f.lastTerm, f.lastPage, f.lastSize = term, page, size
	return &domain.VehiclePage{Vehicles: f.vehicles, TotalPages: f.totalPages}, nil
}

func newVehicleService(t *testing.T, repo *fakeVehicleRepo, brandRepo *fakeBrandRepo) *VehicleService {
	t.Helper()
	validate, err := NewValidator()
	require.NoError(t, err)
	brandService := NewBrandService(brandRepo, testLogger{}, validate)
	return NewVehicleService(repo, brandService, testLogger{}, validate)
}

func validInput() domain.VehicleInput {
	return domain.VehicleInput{
		Model:        "Corolla",
		LicensePlate: "ABC12",
		Color:        "Red",
		Year:         "2020",
		BrandID:      "b1",
	}
}

func toyotaRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: []*domain.Brand{{ID: "b1", Name: "Toyota"}}}
}

func TestListVehiclesInvalidSortField(t *testing.T) {
	svc := newVehicleService(t, &fakeVehicleRepo{}, toyotaRepo())

	_, err := svc.ListVehicles(context.Background(), 0, 10, "color", "asc")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidArgument, domain.KindOf(err))
	assert.Contains(t, err.Error(), "color")
}

func TestListVehiclesSortWhitelist(t *testing.T) {
	repo := &fakeVehicleRepo{totalPages: 1}
	svc := newVehicleService(t, repo, toyotaRepo())

	for _, field := range []string{
		domain.SortModel,
		domain.SortYear,
		domain.SortBrandName,
		domain.SortLicensePlate,
	} {
		_, err := svc.ListVehicles(context.Background(), 0, 10, field, "asc")
		require.NoError(t, err, "field %q", field)
		assert.Equal(t, field, repo.lastSort)
	}
}

func TestListVehiclesTotalPagesIsLastPageIndex(t *testing.T) {
	repo := &fakeVehicleRepo{totalPages: 3}
	svc := newVehicleService(t, repo, toyotaRepo())

	result, err := svc.ListVehicles(context.Background(), 2, 10, domain.SortModel, "desc")
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 2, repo.lastPage)
	assert.Equal(t, 10, repo.lastSize)
}

func TestListVehiclesEmptyResult(t *testing.T) {
	repo := &fakeVehicleRepo{totalPages: 0}
	svc := newVehicleService(t, repo, toyotaRepo())

	result, err := svc.ListVehicles(context.Background(), 0, 10, domain.SortModel, "asc")
	require.NoError(t, err)
	assert.Equal(t, -1, result.TotalPages)
}

func TestSearchVehicles(t *testing.T) {
	repo := &fakeVehicleRepo{totalPages: 2}
	svc := newVehicleService(t, repo, toyotaRepo())

	result, err := svc.SearchVehicles(context.Background(), "Corolla", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, "Corolla", repo.lastTerm)
	assert.Equal(t, 1, repo.lastPage)
}

func TestCreateVehicle(t *testing.T) {
	repo := &fakeVehicleRepo{}
	svc := newVehicleService(t, repo, toyotaRepo())

	require.NoError(t, svc.CreateVehicle(context.Background(), validInput()))

	require.Len(t, repo.vehicles, 1)
	created := repo.vehicles[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Corolla", created.Model)
	assert.Equal(t, "ABC12", created.LicensePlate)
	require.NotNil(t, created.Brand)
	assert.Equal(t, "Toyota", created.Brand.Name)
}

func TestCreateVehiclePlateTaken(t *testing.T) {
	repo := &fakeVehicleRepo{vehicles: []*domain.Vehicle{{ID: "v1", LicensePlate: "ABC12"}}}
	svc := newVehicleService(t, repo, toyotaRepo())

	err := svc.CreateVehicle(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Len(t, repo.vehicles, 1)
}

func TestCreateVehicleBrandMissing(t *testing.T) {
	svc := newVehicleService(t, &fakeVehicleRepo{}, &fakeBrandRepo{})

	err := svc.CreateVehicle(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, "brand does not exist", err.Error())
}

func TestCreateVehicleInvalidInput(t *testing.T) {
	svc := newVehicleService(t, &fakeVehicleRepo{}, toyotaRepo())

	tests := []struct {
		name   string
		mutate func(*domain.VehicleInput)
	}{
		{"year out of range", func(in *domain.VehicleInput) { in.Year = "1875" }},
		{"year not numeric", func(in *domain.VehicleInput) { in.Year = "20x0" }},
		{"plate too short", func(in *domain.VehicleInput) { in.LicensePlate = "AB12" }},
		{"plate starts with digit", func(in *domain.VehicleInput) { in.LicensePlate = "1BC12" }},
		{"color with digits", func(in *domain.VehicleInput) { in.Color = "Red5" }},
		{"model special chars", func(in *domain.VehicleInput) { in.Model = "Cor_olla" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			err := svc.CreateVehicle(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestUpdateVehicleKeepsOwnPlate(t *testing.T) {
	repo := &fakeVehicleRepo{vehicles: []*domain.Vehicle{
		{ID: "v1", Model: "Corolla", LicensePlate: "ABC12", Color: "Red", Year: "2020"},
	}}
	svc := newVehicleService(t, repo, toyotaRepo())

	input := validInput()
	input.Color = "Blue"
	require.NoError(t, svc.UpdateVehicle(context.Background(), "v1", input))
	assert.Equal(t, "Blue", repo.vehicles[0].Color)
}

func TestUpdateVehiclePlateTaken(t *testing.T) {
	repo := &fakeVehicleRepo{vehicles: []*domain.Vehicle{
		{ID: "v1", LicensePlate: "ABC12"},
		{ID: "v2", LicensePlate: "XYZ99"},
	}}
	svc := newVehicleService(t, repo, toyotaRepo())

	input := validInput()
	input.LicensePlate = "XYZ99"
	err := svc.UpdateVehicle(context.Background(), "v1", input)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestUpdateVehicleNotFound(t *testing.T) {
	svc := newVehicleService(t, &fakeVehicleRepo{}, toyotaRepo())

	err := svc.UpdateVehicle(context.Background(), "missing", validInput())
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestVehicleRoundTrip(t *testing.T) {
	repo := &fakeVehicleRepo{}
	svc := newVehicleService(t, repo, toyotaRepo())

	require.NoError(t, svc.CreateVehicle(context.Background(), validInput()))
	created := repo.vehicles[0]

	fetched, err := svc.GetVehicle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corolla", fetched.Model)
	assert.Equal(t, "ABC12", fetched.LicensePlate)
	assert.Equal(t, "Red", fetched.Color)
	assert.Equal(t, "2020", fetched.Year)
	require.NotNil(t, fetched.Brand)
	assert.Equal(t, "b1", fetched.Brand.ID)
	assert.Equal(t, "Toyota", fetched.Brand.Name)
}

func TestDeleteVehicle(t *testing.T) {
	repo := &fakeVehicleRepo{vehicles: []*domain.Vehicle{{ID: "v1"}}}
	svc := newVehicleService(t, repo, toyotaRepo())

	require.NoError(t, svc.DeleteVehicle(context.Background(), "v1"))
	assert.Empty(t, repo.vehicles)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	svc := newVehicleService(t, &fakeVehicleRepo{}, toyotaRepo())

	err := svc.DeleteVehicle(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
