package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunSettings(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		level   string
		want    RunSettings
		wantErr string
	}{
		{"defaults level", "42", "", RunSettings{Seed: 42, Level: 1}, ""},
		{"trims", " 7 ", " 3 ", RunSettings{Seed: 7, Level: 3}, ""},
		{"negative seed", "-5", "2", RunSettings{Seed: -5, Level: 2}, ""},
		{"empty seed", "", "1", RunSettings{}, "seed is required"},
		{"word seed", "abc", "1", RunSettings{}, "whole number"},
		{"level zero", "1", "0", RunSettings{}, "level must be"},
		{"level too deep", "1", "99", RunSettings{}, "level must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRunSettings(tt.seed, tt.level)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
