package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResultRecord(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		gameID     string
		date       string
		modifiedAt int64
		sharedText string
		wantErr    string
	}{
		{
			name:       "valid record",
			id:         "r1",
			gameID:     "wordle",
			date:       "2025-06-01",
			modifiedAt: 100,
		},
		{
			name:       "empty date allowed",
			id:         "r1",
			gameID:     "wordle",
			modifiedAt: 100,
		},
		{
			name:       "missing id",
			gameID:     "wordle",
			modifiedAt: 100,
			wantErr:    "id cannot be empty",
		},
		{
			name:       "missing game id",
			id:         "r1",
			modifiedAt: 100,
			wantErr:    "game_id cannot be empty",
		},
		{
			name:    "zero modified_at",
			id:      "r1",
			gameID:  "wordle",
			wantErr: "modified_at must be positive",
		},
		{
			name:       "bad date format",
			id:         "r1",
			gameID:     "wordle",
			date:       "06/01/2025",
			modifiedAt: 100,
			wantErr:    "date must be YYYY-MM-DD",
		},
		{
			name:       "oversized shared text",
			id:         "r1",
			gameID:     "wordle",
			modifiedAt: 100,
			sharedText: strings.Repeat("x", MaxSharedTextLen+1),
			wantErr:    "shared_text exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResultRecord(tt.id, tt.gameID, tt.date, tt.modifiedAt, tt.sharedText)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
