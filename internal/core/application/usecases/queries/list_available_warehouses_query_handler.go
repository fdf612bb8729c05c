package queries

import (
	"context"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAvailableWarehousesQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableWarehousesQueryHandler(db *gorm.DB) ListAvailableWarehousesQueryHandler {
	return ListAvailableWarehousesQueryHandler{db: db}
}

// Handle returns AVAILABLE warehouses ordered by country, city and name.
// The country filter matches the stored name exactly, as country lookups do.
func (h ListAvailableWarehousesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableWarehousesQuery,
) ([]ListAvailableWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.name,
			w.address_street,
			w.address_zip_code,
			ci.name,
			co.name,
			w.storage_type_name,
			w.size,
			w.climate_condition
		FROM warehouses w
		JOIN cities ci ON ci.id = w.address_city_id
		JOIN countries co ON co.id = ci.country_id
		WHERE w.status = @status
			AND (@country = '' OR co.name = @country)
		ORDER BY co.name, ci.name, w.name
	`, map[string]any{
		"status":  warehouse.Available.String(),
		"country": strings.TrimSpace(query.Country()),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]ListAvailableWarehousesQueryResponse, 0)
	for rows.Next() {
		var (
			item ListAvailableWarehousesQueryResponse
			id   uuid.UUID
		)
		err = rows.Scan(
			&id,
			&item.Name,
			&item.Street,
			&item.ZipCode,
			&item.City,
			&item.Country,
			&item.StorageType,
			&item.Size,
			&item.ClimateCondition,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
