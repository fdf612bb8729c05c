package queries

import (
	"context"

	"wms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCountriesQueryHandler answers ListCountriesQuery with a single
// aggregate SQL statement.
type ListCountriesQueryHandler struct {
	db *gorm.DB
}

func NewListCountriesQueryHandler(db *gorm.DB) ListCountriesQueryHandler {
	return ListCountriesQueryHandler{db: db}
}

// Handle returns all countries sorted by name. An empty database yields an
// empty, non-nil slice.
func (h ListCountriesQueryHandler) Handle(
	ctx context.Context,
	query ListCountriesQuery,
) ([]ListCountriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			co.id,
			co.name,
			COUNT(ci.id) AS cities
		FROM countries co
		LEFT JOIN cities ci ON ci.country_id = co.id
		GROUP BY co.id, co.name
		ORDER BY co.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]ListCountriesQueryResponse, 0)
	for rows.Next() {
		var (
			country ListCountriesQueryResponse
			id      uuid.UUID
		)
		if err = rows.Scan(&id, &country.Name, &country.Cities); err != nil {
			return nil, err
		}

		country.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return countries, nil
}
