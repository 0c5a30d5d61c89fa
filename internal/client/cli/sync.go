package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/streakbox/streakbox/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Syncing with server...")

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrSyncInProgress) {
			c.io.Println("Sync already running, skipping.")
			return nil
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("Synchronization completed!")
	c.io.Println()
	c.io.Printf("Pulled from server: %d\n", result.Pulled)
	c.io.Printf("Merged locally:     %d\n", result.Merged)
	c.io.Printf("Pushed to server:   %d\n", result.Pushed)
	c.io.Printf("Confirmed:          %d\n", result.Confirmed)
	if result.Conflicts > 0 {
		c.io.Printf("Conflicts resolved: %d\n", result.Conflicts)
	}
	if result.Requeued > 0 {
		c.io.Printf("Requeued for retry: %d\n", result.Requeued)
	}
	if result.Failed > 0 {
		c.io.Printf("Failed (permanent): %d\n", result.Failed)
	}

	return nil
}
