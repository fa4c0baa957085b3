//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name:          "valid file path",
			settings:      &DatabaseSettings{Path: "operations.db"},
			expectedError: false,
		},
		{
			name:          "valid in-memory path",
			settings:      &DatabaseSettings{Path: ":memory:"},
			expectedError: false,
		},
		{
			name:          "missing path",
			settings:      &DatabaseSettings{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
