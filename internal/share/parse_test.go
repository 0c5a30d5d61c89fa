package share

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streakbox/streakbox/internal/models"
)

func TestParse_Wordle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	text := "Wordle 1,234 4/6\n\n⬛🟨⬛⬛⬛\n🟩🟩🟩🟩🟩"

	result, err := Parse(text, now)

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "wordle", result.GameID)
	assert.Equal(t, "Wordle", result.GameName)
	assert.Equal(t, "2025-06-01", result.Date)
	assert.Equal(t, "1,234", result.Fields[models.FieldPuzzleNumber])
	require.NotNil(t, result.Score)
	assert.Equal(t, 4, *result.Score)
	assert.Equal(t, 6, result.MaxAttempts)
	assert.True(t, result.Completed)
	assert.Equal(t, text, result.SharedText)
	assert.Equal(t, now.UnixMilli(), result.ModifiedAt)
}

func TestParse_FailedAttempt(t *testing.T) {
	result, err := Parse("Wordle 987 X/6", time.Now())

	require.NoError(t, err)
	assert.Nil(t, result.Score)
	assert.Equal(t, 6, result.MaxAttempts)
	assert.False(t, result.Completed)
}

func TestParse_NoScore(t *testing.T) {
	result, err := Parse("Connections #512", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "connections", result.GameID)
	assert.Equal(t, "512", result.Fields[models.FieldPuzzleNumber])
	assert.Nil(t, result.Score)
	assert.True(t, result.Completed)
}

func TestParse_Unrecognized(t *testing.T) {
	tests := []string{
		"",
		"   \n  ",
		"just some random text without numbers",
	}

	for _, text := range tests {
		_, err := Parse(text, time.Now())
		assert.ErrorIs(t, err, ErrUnrecognized)
	}
}

func TestParse_UniqueIDs(t *testing.T) {
	first, err := Parse("Wordle 100 3/6", time.Now())
	require.NoError(t, err)
	second, err := Parse("Wordle 100 3/6", time.Now())
	require.NoError(t, err)

	// Идентификатор назначается при создании, двух одинаковых не бывает
	assert.NotEqual(t, first.ID, second.ID)
}
