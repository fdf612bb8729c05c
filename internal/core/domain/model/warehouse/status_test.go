package warehouse_test

import (
	"testing"

	"wms/internal/core/domain/model/warehouse"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(warehouse.Unknown))
	assert.Equal(t, 1, int(warehouse.Available))
	assert.Equal(t, 2, int(warehouse.Rented))
	assert.Equal(t, 3, int(warehouse.Unavailable))
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected warehouse.Status
	}{
		{"AVAILABLE", warehouse.Available},
		{"rented", warehouse.Rented},
		{" Unavailable ", warehouse.Unavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			s, err := warehouse.ParseStatus(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
			assert.Equal(t, s, mustParse(t, s.String()))
		})
	}

	t.Run("rejects unknown", func(t *testing.T) {
		_, err := warehouse.ParseStatus("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, warehouse.Rented.Validate())
	require.ErrorIs(t, warehouse.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, warehouse.Status(17).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", warehouse.Status(17).String())
}

func mustParse(t *testing.T, s string) warehouse.Status {
	t.Helper()
	status, err := warehouse.ParseStatus(s)
	require.NoError(t, err)
	return status
}
