//go:build integration

package countryrepo_test

import (
	"context"
	"testing"
	"time"

	"wms/internal/adapters/out/postgres/cityrepo"
	"wms/internal/adapters/out/postgres/countryrepo"
	"wms/internal/adapters/out/postgres/pgtest"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CountryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *countryrepo.GormCountryRepository
	tracker    *MockAggregateTracker
}

func (suite *CountryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CountryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = countryrepo.NewGormCountryRepository(suite.database.DB, suite.tracker)
}

func (suite *CountryRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CountryRepositoryIntegrationTestSuite) addCountry(name string) *location.Country {
	c, err := location.NewCountry(name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CountryRepositoryIntegrationTestSuite) TestAdd_ValidCountry_Success() {
	c := suite.addCountry("Bulgaria")

	found, ok, err := suite.repository.FindByName(context.Background(), "Bulgaria")

	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.True(found.IsEqual(c))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", c.ID(), c)
}

func (suite *CountryRepositoryIntegrationTestSuite) TestAdd_DuplicateName_AlreadyExists() {
	suite.addCountry("Bulgaria")
	dup, err := location.NewCountry("Bulgaria")
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), dup)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CountryRepositoryIntegrationTestSuite) TestFindByName_IsCaseSensitive() {
	ctx := context.Background()
	c := suite.addCountry("Bulgaria")

	found, ok, err := suite.repository.FindByName(ctx, "Bulgaria")
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.True(found.IsEqual(c))

	_, ok, err = suite.repository.FindByName(ctx, "bulgaria")
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *CountryRepositoryIntegrationTestSuite) TestDeleteUnused_KeepsReferencedAndFresh() {
	ctx := context.Background()
	withCity := suite.addCountry("Bulgaria")
	orphan := suite.addCountry("Atlantis")

	city, err := location.NewCity("Sofia", withCity)
	suite.Require().NoError(err)
	suite.Require().NoError(cityrepo.NewGormCityRepository(suite.database.DB, suite.tracker).Add(ctx, city))

	removed, err := suite.repository.DeleteUnused(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(0), removed, "records newer than the cutoff survive")

	removed, err = suite.repository.DeleteUnused(ctx, time.Now().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, ok, err := suite.repository.FindByName(ctx, orphan.Name())
	suite.Require().NoError(err)
	suite.False(ok)
	_, ok, err = suite.repository.FindByName(ctx, withCity.Name())
	suite.Require().NoError(err)
	suite.True(ok)
}

func TestCountryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CountryRepositoryIntegrationTestSuite))
}
