package services_test

import (
	"context"
	"time"

	"wms/internal/core/application/services"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/user"
	"wms/internal/core/domain/model/warehouse"
	"wms/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Find(ctx context.Context, id kernel.UUID) (*user.User, bool, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, bool, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Bool(1), args.Error(2)
}

type MockCountryRepository struct{ mock.Mock }

func (m *MockCountryRepository) Add(ctx context.Context, c *location.Country) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCountryRepository) FindByName(ctx context.Context, name string) (*location.Country, bool, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*location.Country)
	return c, args.Bool(1), args.Error(2)
}

func (m *MockCountryRepository) DeleteUnused(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c *location.City) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCityRepository) FindByNameAndCountry(
	ctx context.Context,
	name string,
	country *location.Country,
) (*location.City, bool, error) {
	args := m.Called(ctx, name, country)
	c, _ := args.Get(0).(*location.City)
	return c, args.Bool(1), args.Error(2)
}

func (m *MockCityRepository) DeleteUnused(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseRepository) Find(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, bool, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*warehouse.Warehouse)
	return w, args.Bool(1), args.Error(2)
}

func (m *MockWarehouseRepository) FindByOwner(ctx context.Context, ownerID kernel.UUID) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx, ownerID)
	list, _ := args.Get(0).([]*warehouse.Warehouse)
	return list, args.Error(1)
}

// MockUoW satisfies both services.UoW and services.UserUoW.
type MockUoW struct {
	mock.Mock
	users      *MockUserRepository
	countries  *MockCountryRepository
	cities     *MockCityRepository
	warehouses *MockWarehouseRepository
}

func newMockUoW() *MockUoW {
	uow := &MockUoW{
		users:      new(MockUserRepository),
		countries:  new(MockCountryRepository),
		cities:     new(MockCityRepository),
		warehouses: new(MockWarehouseRepository),
	}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UserRepository() ports.UserRepository           { return m.users }
func (m *MockUoW) CountryRepository() ports.CountryRepository     { return m.countries }
func (m *MockUoW) CityRepository() ports.CityRepository           { return m.cities }
func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository { return m.warehouses }

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() services.UoW { return f.uow }

type MockUserUoWFactory struct{ uow *MockUoW }

func (f MockUserUoWFactory) Create() services.UserUoW { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, encodedHash string) (bool, error) {
	args := m.Called(password, encodedHash)
	return args.Bool(0), args.Error(1)
}
