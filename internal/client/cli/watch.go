package cli

import (
	"context"
	"fmt"
	"time"
)

// pollInterval страхует от потерянных wake-сигналов: доставка
// fsnotify best-effort, поэтому ящик дополнительно опрашивается
const pollInterval = 30 * time.Second

func (c *Cli) runWatch(ctx context.Context) error {
	if c.mailbox == nil {
		return fmt.Errorf("mailbox directory is not configured, pass --mailbox")
	}

	wake, err := c.mailbox.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch mailbox: %w", err)
	}

	c.io.Println("Watching mailbox for incoming results. Ctrl+C to stop.")

	// Стартовый дрейн: результаты могли накопиться пока нас не было
	if err := c.drainMailbox(ctx); err != nil {
		c.io.Printf("Warning: %v\n", err)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-wake:
			if !ok {
				return nil
			}
			if err := c.drainMailbox(ctx); err != nil {
				c.io.Printf("Warning: %v\n", err)
			}
		case <-ticker.C:
			if err := c.drainMailbox(ctx); err != nil {
				c.io.Printf("Warning: %v\n", err)
			}
		}
	}
}

func (c *Cli) drainMailbox(ctx context.Context) error {
	results, err := c.mailbox.Drain(ctx)
	if err != nil {
		return fmt.Errorf("failed to drain mailbox: %w", err)
	}
	if len(results) == 0 {
		return nil
	}

	accepted, err := c.ingestor.IngestBatch(ctx, results)
	if accepted > 0 {
		c.io.Printf("Ingested %d new result(s)\n", accepted)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest results: %w", err)
	}
	return nil
}
