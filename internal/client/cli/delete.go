package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing result id. Usage: streakbox delete <id>")
	}
	id := args[0]

	if err := c.syncService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	c.io.Printf("Deleted %s. The deletion will propagate to your other devices.\n", id)
	return nil
}
