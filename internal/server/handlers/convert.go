package handlers

import (
	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/pkg/api"
)

// toAPIRecord конвертирует доменную запись в wire-формат
func toAPIRecord(r *models.PuzzleResult) api.ResultRecord {
	return api.ResultRecord{
		ID:          r.ID,
		GameID:      r.GameID,
		GameName:    r.GameName,
		Date:        r.Date,
		SharedText:  r.SharedText,
		Score:       r.Score,
		MaxAttempts: r.MaxAttempts,
		Completed:   r.Completed,
		Deleted:     r.Deleted,
		Fields:      r.Fields,
		ModifiedAt:  r.ModifiedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// fromAPIRecord конвертирует wire-формат в доменную запись
func fromAPIRecord(r *api.ResultRecord) *models.PuzzleResult {
	return &models.PuzzleResult{
		ID:          r.ID,
		GameID:      r.GameID,
		GameName:    r.GameName,
		Date:        r.Date,
		SharedText:  r.SharedText,
		Score:       r.Score,
		MaxAttempts: r.MaxAttempts,
		Completed:   r.Completed,
		Deleted:     r.Deleted,
		Fields:      r.Fields,
		ModifiedAt:  r.ModifiedAt,
		CreatedAt:   r.CreatedAt,
	}
}
