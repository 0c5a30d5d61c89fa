// Package dedup реализует локальную защиту от повторной доставки результатов.
// Проверка advisory: она отсекает ретраи share-процесса в рамках одной сессии
// и не заменяет merge по идентификатору в sync engine.
package dedup

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/streakbox/streakbox/internal/models"
)

const (
	// DefaultWindow окно, внутри которого повторный результат той же игры
	// считается дублем даже при несовпадающем fingerprint
	DefaultWindow = 10 * time.Second

	// DefaultMaxEntries порог размера кеша fingerprints
	DefaultMaxEntries = 256

	// scoreSentinel используется в fingerprint когда счет отсутствует
	scoreSentinel = "-"
)

// Detector решает, является ли входящий результат дублем уже принятого
type Detector struct {
	seen       map[string]time.Time // fingerprint -> время ингеста
	lastByGame map[string]time.Time // game name -> время последнего ингеста
	now        func() time.Time
	window     time.Duration
	maxEntries int
	mu         sync.Mutex
}

// New создает detector с заданным окном и порогом кеша.
// Нулевые значения заменяются дефолтами.
func New(window time.Duration, maxEntries int) *Detector {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Detector{
		seen:       make(map[string]time.Time),
		lastByGame: make(map[string]time.Time),
		window:     window,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Fingerprint строит детерминированный ключ из имени игры, номера пазла
// без пунктуации и счета (или sentinel, если счета нет).
func Fingerprint(r *models.PuzzleResult) string {
	score := scoreSentinel
	if r.Score != nil {
		score = fmt.Sprintf("%d", *r.Score)
	}
	return r.GameName + "|" + normalizePuzzleNumber(r.PuzzleNumber()) + "|" + score
}

// IsDuplicate возвращает true если fingerprint уже в кеше, либо если
// последний ингест той же игры был внутри окна (быстрая двойная доставка
// без идентичных fingerprints).
func (d *Detector) IsDuplicate(r *models.PuzzleResult) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[Fingerprint(r)]; ok {
		return true
	}

	if last, ok := d.lastByGame[r.GameName]; ok {
		if d.now().Sub(last) < d.window {
			return true
		}
	}

	return false
}

// MarkIngested регистрирует результат в кеше.
// Кеш ограничен: при переполнении очищается целиком (не LRU) - ложные
// отрицания после очистки допустимы для этого домена.
func (d *Detector) MarkIngested(r *models.PuzzleResult) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.seen) >= d.maxEntries {
		d.seen = make(map[string]time.Time)
	}

	now := d.now()
	d.seen[Fingerprint(r)] = now
	d.lastByGame[r.GameName] = now
}

// normalizePuzzleNumber убирает пунктуацию из номера пазла
// ("1,234" и "1.234" дают одинаковый ключ)
func normalizePuzzleNumber(number string) string {
	return strings.Map(func(c rune) rune {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			return c
		default:
			return -1
		}
	}, number)
}
