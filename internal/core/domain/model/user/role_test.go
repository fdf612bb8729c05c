package user_test

import (
	"testing"

	"wms/internal/core/domain/model/user"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("should accept any casing", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected user.Role
		}{
			{"OWNER", user.Owner},
			{"owner", user.Owner},
			{" Agent ", user.Agent},
			{"tenant", user.Tenant},
			{"Admin", user.Admin},
		}

		for _, tc := range testCases {
			role, err := user.ParseRole(tc.input)

			require.NoError(t, err, tc.input)
			assert.Equal(t, tc.expected, role)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"Ownr", "", "UNKNOWN", "landlord"} {
			role, err := user.ParseRole(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
			assert.Equal(t, user.Unknown, role)
		}
	})
}

func TestRole_IsSelfRegistrable(t *testing.T) {
	assert.True(t, user.Owner.IsSelfRegistrable())
	assert.True(t, user.Agent.IsSelfRegistrable())
	assert.True(t, user.Tenant.IsSelfRegistrable())
	assert.False(t, user.Admin.IsSelfRegistrable())
	assert.False(t, user.Unknown.IsSelfRegistrable())
}

func TestRole_ValidateAndString(t *testing.T) {
	require.Error(t, user.Unknown.Validate())
	require.Error(t, user.Role(42).Validate())
	require.NoError(t, user.Tenant.Validate())

	assert.Equal(t, "OWNER", user.Owner.String())
	assert.Equal(t, "UNKNOWN", user.Role(42).String())
}
