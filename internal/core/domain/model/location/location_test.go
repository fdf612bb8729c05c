package location_test

import (
	"testing"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountry(t *testing.T) {
	t.Run("should trim the name and keep its case", func(t *testing.T) {
		c, err := location.NewCountry("  Bulgaria ")

		require.NoError(t, err)
		assert.Equal(t, "Bulgaria", c.Name())
		assert.False(t, c.ID().IsZero())
		require.NoError(t, c.Validate())
	})

	t.Run("should reject blank names", func(t *testing.T) {
		c, err := location.NewCountry("   ")

		require.ErrorIs(t, err, location.ErrCountryNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("restore keeps identity", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := location.RestoreCountry(id, "Greece")
		require.NoError(t, err)
		b, err := location.RestoreCountry(id, "Hellas")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.ErrorIs(t, (&location.Country{}).Validate(), location.ErrCountryIsNotConstructed)
	})
}

func TestNewCity(t *testing.T) {
	bg, err := location.NewCountry("Bulgaria")
	require.NoError(t, err)

	t.Run("should link the country", func(t *testing.T) {
		city, err := location.NewCity("Sofia", bg)

		require.NoError(t, err)
		assert.Equal(t, "Sofia", city.Name())
		assert.True(t, city.Country().IsEqual(bg))
	})

	t.Run("should report every missing part", func(t *testing.T) {
		city, err := location.NewCity("", nil)

		require.ErrorIs(t, err, location.ErrCityNameIsRequired)
		require.ErrorIs(t, err, location.ErrCityCountryIsRequired)
		assert.Nil(t, city)
	})

	t.Run("should reject an unconstructed country", func(t *testing.T) {
		_, err := location.NewCity("Sofia", &location.Country{})

		require.ErrorIs(t, err, location.ErrCountryIsNotConstructed)
	})
}

func TestNewAddress(t *testing.T) {
	bg, err := location.NewCountry("Bulgaria")
	require.NoError(t, err)
	sofia, err := location.NewCity("Sofia", bg)
	require.NoError(t, err)

	t.Run("valid address", func(t *testing.T) {
		addr, err := location.NewAddress(" 1 Vitosha Blvd ", "1000", sofia)

		require.NoError(t, err)
		assert.Equal(t, "1 Vitosha Blvd", addr.Street())
		assert.Equal(t, "1000", addr.ZipCode())
		assert.Equal(t, sofia, addr.City())
		assert.Equal(t, bg, addr.Country())
		assert.Equal(t, "1 Vitosha Blvd, 1000 Sofia, Bulgaria", addr.String())
		require.NoError(t, addr.Validate())
	})

	t.Run("invalid address", func(t *testing.T) {
		addr, err := location.NewAddress("", " ", nil)

		require.ErrorIs(t, err, location.ErrStreetIsRequired)
		require.ErrorIs(t, err, location.ErrZipCodeIsRequired)
		require.ErrorIs(t, err, location.ErrAddressCityIsRequired)
		require.ErrorIs(t, addr.Validate(), location.ErrAddressIsNotConstructed)
	})
}
