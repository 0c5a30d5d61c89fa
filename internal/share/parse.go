// Package share разбирает shared текст из игр с ежедневными пазлами
// (например "Wordle 1,234 4/6") в PuzzleResult.
package share

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streakbox/streakbox/internal/models"
)

// headerPattern матчит первую строку типичного share текста:
// имя игры, опциональный номер пазла, опциональный счет вида "4/6" или "X/6"
var headerPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9'’ .-]*?)\s+#?([\d,.]+)(?:\s+(X|x|\d+)/(\d+))?\s*$`)

// ErrUnrecognized возвращается когда текст не похож на результат пазла
var ErrUnrecognized = fmt.Errorf("shared text not recognized as a puzzle result")

// Parse разбирает shared текст и создает новую запись результата.
// Идентификатор назначается здесь и больше никогда не меняется.
func Parse(text string, now time.Time) (*models.PuzzleResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrUnrecognized
	}

	// Берем первую непустую строку как заголовок
	var header string
	for _, line := range strings.Split(trimmed, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			header = l
			break
		}
	}

	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return nil, ErrUnrecognized
	}

	gameName := strings.TrimSpace(m[1])
	puzzleNumber := m[2]

	result := &models.PuzzleResult{
		ID:         uuid.New().String(),
		GameID:     gameID(gameName),
		GameName:   gameName,
		Date:       now.Format("2006-01-02"),
		SharedText: text,
		Fields: map[string]string{
			models.FieldPuzzleNumber: puzzleNumber,
		},
		ModifiedAt: now.UnixMilli(),
		CreatedAt:  now,
	}

	// Счет опционален: "X/6" означает неудачную попытку
	if m[3] != "" {
		maxAttempts, err := strconv.Atoi(m[4])
		if err != nil {
			return nil, fmt.Errorf("failed to parse max attempts: %w", err)
		}
		result.MaxAttempts = maxAttempts

		if strings.EqualFold(m[3], "x") {
			result.Completed = false
		} else {
			score, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, fmt.Errorf("failed to parse score: %w", err)
			}
			result.Score = &score
			result.Completed = true
		}
	} else {
		// Нет счета - считаем что игра просто пройдена (например Connections)
		result.Completed = true
	}

	return result, nil
}

// gameID приводит имя игры к стабильному идентификатору
func gameID(name string) string {
	id := strings.ToLower(name)
	id = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '.':
			return '-'
		default:
			return -1
		}
	}, id)
	return strings.Trim(id, "-")
}
