package countryrepo

import (
	"context"
	"time"

	"wms/internal/adapters/out/postgres/pgerrs"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCountryRepository implements ports.CountryRepository using GORM.
type GormCountryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCountryRepository creates a country repository bound to db.
func NewGormCountryRepository(db *gorm.DB, tracker aggregateTracker) *GormCountryRepository {
	return &GormCountryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a country. A duplicate name is errs.ObjectAlreadyExistsError.
func (r *GormCountryRepository) Add(ctx context.Context, country *location.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}

	dto := FromDomain(country)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.TranslateWrite(err, "country "+country.Name())
	}

	r.tracker.TrackAggregate(country.ID(), country)
	return nil
}

// FindByName retrieves a country by exact (case-sensitive) name.
func (r *GormCountryRepository) FindByName(ctx context.Context, name string) (*location.Country, bool, error) {
	var dtos []CountryDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Limit(2).Find(&dtos).Error; err != nil {
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
		return nil, false, errs.NewAmbiguousResultError("country", name)
	}
}

// DeleteUnused removes countries that have no cities and were created
// before olderThan.
func (r *GormCountryRepository) DeleteUnused(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Where("NOT EXISTS (SELECT 1 FROM cities WHERE cities.country_id = countries.id)").
		Delete(&CountryDTO{})
	return result.RowsAffected, result.Error
}
