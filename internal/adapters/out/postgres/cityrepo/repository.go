package cityrepo

import (
	"context"
	"fmt"
	"time"

	"wms/internal/adapters/out/postgres/pgerrs"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCityRepository implements ports.CityRepository using GORM.
type GormCityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCityRepository creates a city repository bound to db.
func NewGormCityRepository(db *gorm.DB, tracker aggregateTracker) *GormCityRepository {
	return &GormCityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a city. Its country must already be stored. A duplicate
// (name, country) pair is errs.ObjectAlreadyExistsError.
func (r *GormCityRepository) Add(ctx context.Context, city *location.City) error {
	if err := city.Validate(); err != nil {
		return err
	}

	dto := FromDomain(city)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.TranslateWrite(err, fmt.Sprintf("city %s in %s", city.Name(), city.Country().Name()))
	}

	r.tracker.TrackAggregate(city.ID(), city)
	return nil
}

// FindByNameAndCountry retrieves a city by exact name within country.
func (r *GormCityRepository) FindByNameAndCountry(
	ctx context.Context,
	name string,
	country *location.Country,
) (*location.City, bool, error) {
	if err := country.Validate(); err != nil {
		return nil, false, err
	}
	key := fmt.Sprintf("%s/%s", country.Name(), name)
	return r.findOne(ctx, key, "name = ? AND country_id = ?", name, country.ID().Bytes())
}

// DeleteUnused removes cities no warehouse address points to and that were
// created before olderThan.
func (r *GormCityRepository) DeleteUnused(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Where("NOT EXISTS (SELECT 1 FROM warehouses WHERE warehouses.address_city_id = cities.id)").
		Delete(&CityDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormCityRepository) findOne(ctx context.Context, key any, query string, args ...any) (*location.City, bool, error) {
	var dtos []CityDTO
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Where(query, args...).
		Limit(2).
		Find(&dtos).Error; err != nil {
		return nil, false, err
	}

	switch len(dtos) {
	case 0:
		return nil, false, nil
	case 1:
		c, err := ToDomain(dtos[0])
		if err != nil {
			return nil, false, err
		}
		return c, true, nil
	default:
		return nil, false, errs.NewAmbiguousResultError("city", key)
	}
}
