package sync

import (
	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/pkg/api"
)

// toRecord конвертирует локальную запись в wire-формат
func toRecord(r *models.PuzzleResult) *api.ResultRecord {
	return &api.ResultRecord{
		CreatedAt:   r.CreatedAt,
		Fields:      r.Fields,
		ID:          r.ID,
		GameID:      r.GameID,
		GameName:    r.GameName,
		Date:        r.Date,
		SharedText:  r.SharedText,
		Score:       r.Score,
		ModifiedAt:  r.ModifiedAt,
		MaxAttempts: r.MaxAttempts,
		Completed:   r.Completed,
		Deleted:     r.Deleted,
	}
}

// fromRecord конвертирует wire-формат в локальную запись
func fromRecord(rec *api.ResultRecord) *models.PuzzleResult {
	return &models.PuzzleResult{
		CreatedAt:   rec.CreatedAt,
		Fields:      rec.Fields,
		ID:          rec.ID,
		GameID:      rec.GameID,
		GameName:    rec.GameName,
		Date:        rec.Date,
		SharedText:  rec.SharedText,
		Score:       rec.Score,
		ModifiedAt:  rec.ModifiedAt,
		MaxAttempts: rec.MaxAttempts,
		Completed:   rec.Completed,
		Deleted:     rec.Deleted,
	}
}
