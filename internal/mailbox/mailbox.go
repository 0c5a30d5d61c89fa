// Package mailbox реализует почтовый ящик между процессом-продюсером
// (share extension) и процессом-консьюмером. Обе стороны живут в разных
// OS процессах и не синхронизированы, поэтому вся работа с общей
// директорией идет под файловой блокировкой, а wake-сигнал best-effort:
// консьюмер обязан также опрашивать ящик при выходе на передний план.
package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"

	"github.com/streakbox/streakbox/internal/models"
)

const (
	// queueFileName FIFO очередь результатов (JSON массив)
	queueFileName = "queue.json"

	// legacyFileName single-slot "последний результат" от старых продюсеров.
	// Поддерживается на время миграции: drain сначала читает очередь,
	// при пустой очереди забирает legacy слот.
	legacyFileName = "latest.json"

	// wakeFileName файл-сигнал без полезной нагрузки
	wakeFileName = "wake"

	// lockFileName файл для межпроцессной блокировки
	lockFileName = "mailbox.lock"

	// lockRetryDelay интервал повторных попыток взять блокировку
	lockRetryDelay = 25 * time.Millisecond
)

// ErrStorageUnavailable возвращается когда общая директория недоступна.
// Вызывающие не должны падать: запись/дрейн можно повторить позже.
var ErrStorageUnavailable = errors.New("mailbox storage unavailable")

// Mailbox представляет общую область хранения двух процессов
type Mailbox struct {
	logger *slog.Logger
	dir    string
}

// New создает mailbox поверх общей директории.
// Директорию провиженит composition root приложения, не сам тип.
func New(dir string, logger *slog.Logger) *Mailbox {
	return &Mailbox{dir: dir, logger: logger}
}

// Write добавляет результат в FIFO очередь и издает wake-сигнал
func (m *Mailbox) Write(ctx context.Context, result *models.PuzzleResult) error {
	unlock, err := m.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	queue, err := m.readQueue()
	if err != nil {
		return err
	}

	queue = append(queue, result)

	if err := m.writeQueue(queue); err != nil {
		return err
	}

	// Wake-сигнал best-effort: потеря не фатальна, консьюмер опрашивает сам
	if err := m.signalWake(); err != nil {
		m.logger.Warn("Failed to emit wake signal", "error", err)
	}

	return nil
}

// Drain атомарно читает и очищает все результаты в порядке поступления.
// При пустой очереди забирает legacy single-slot.
func (m *Mailbox) Drain(ctx context.Context) ([]*models.PuzzleResult, error) {
	unlock, err := m.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	queue, err := m.readQueue()
	if err != nil {
		return nil, err
	}

	if err := m.removeFile(queueFileName); err != nil {
		return nil, err
	}

	// Fallback на legacy слот только когда очередь пуста
	if len(queue) == 0 {
		legacy, err := m.readLegacySlot()
		if err != nil {
			return nil, err
		}
		if legacy != nil {
			queue = append(queue, legacy)
		}
		if err := m.removeFile(legacyFileName); err != nil {
			return nil, err
		}
	}

	// Сигнал обработан
	if err := m.removeFile(wakeFileName); err != nil {
		m.logger.Warn("Failed to clear wake signal", "error", err)
	}

	return queue, nil
}

// HasPending быстро проверяет наличие недоставленных результатов
func (m *Mailbox) HasPending() bool {
	for _, name := range []string{queueFileName, legacyFileName} {
		if info, err := os.Stat(filepath.Join(m.dir, name)); err == nil && info.Size() > 0 {
			return true
		}
	}
	return false
}

// Watch возвращает канал wake-сигналов на основе fsnotify.
// Доставка best-effort: события склеиваются, переполнение канала
// отбрасывается. Канал закрывается при отмене контекста.
func (m *Mailbox) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(m.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	wake := make(chan struct{}, 1)

	go func() {
		defer close(wake)
		defer func() {
			if err := watcher.Close(); err != nil {
				m.logger.Warn("Failed to close mailbox watcher", "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(event.Name)
				if name != wakeFileName && name != queueFileName && name != legacyFileName {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				select {
				case wake <- struct{}{}:
				default:
					// Консьюмер еще не обработал предыдущий сигнал
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.logger.Warn("Mailbox watcher error", "error", err)
			}
		}
	}()

	return wake, nil
}

// acquireLock берет межпроцессную блокировку на общую директорию
func (m *Mailbox) acquireLock(ctx context.Context) (func(), error) {
	if info, err := os.Stat(m.dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, m.dir)
	}

	fl := flock.New(filepath.Join(m.dir, lockFileName))

	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to lock mailbox: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock mailbox")
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			m.logger.Warn("Failed to unlock mailbox", "error", err)
		}
	}, nil
}

// readQueue читает FIFO очередь; отсутствующий файл - пустая очередь
func (m *Mailbox) readQueue() ([]*models.PuzzleResult, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, queueFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var queue []*models.PuzzleResult
	if err := json.Unmarshal(data, &queue); err != nil {
		// Поврежденная очередь: теряем содержимое, но не падаем
		m.logger.Warn("Corrupted mailbox queue, discarding", "error", err)
		return nil, nil
	}

	return queue, nil
}

// readLegacySlot читает single-slot запись старого формата
func (m *Mailbox) readLegacySlot() (*models.PuzzleResult, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, legacyFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var result models.PuzzleResult
	if err := json.Unmarshal(data, &result); err != nil {
		m.logger.Warn("Corrupted legacy slot, discarding", "error", err)
		return nil, nil
	}

	return &result, nil
}

// writeQueue пишет очередь атомарно через tmp файл + rename
func (m *Mailbox) writeQueue(queue []*models.PuzzleResult) error {
	data, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	path := filepath.Join(m.dir, queueFileName)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// signalWake создает/обновляет файл-сигнал без полезной нагрузки
func (m *Mailbox) signalWake() error {
	path := filepath.Join(m.dir, wakeFileName)
	return os.WriteFile(path, []byte(fmt.Sprintf("%d", time.Now().UnixNano())), 0o600)
}

// removeFile удаляет файл, игнорируя его отсутствие
func (m *Mailbox) removeFile(name string) error {
	err := os.Remove(filepath.Join(m.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
