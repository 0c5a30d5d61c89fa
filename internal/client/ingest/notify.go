package ingest

import "sync"

// Notifier раздаёт коалесцирующие уведомления об изменении локального
// набора результатов. Подписчик получает сигнал «что-то изменилось»,
// без полезной нагрузки: повторные публикации между чтениями схлопываются.
type Notifier struct {
	mu   sync.Mutex
	subs []chan struct{}
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe returns a channel that receives a signal after each change.
// The channel is buffered with capacity one, so a slow subscriber sees
// at most one pending signal.
func (n *Notifier) Subscribe() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	n.subs = append(n.subs, ch)

	return ch
}

// Publish signals all subscribers. Never blocks.
func (n *Notifier) Publish() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
