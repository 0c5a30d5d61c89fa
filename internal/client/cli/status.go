package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'streakbox login' to authenticate.")
		return nil
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	c.io.Println()
	c.io.Printf("Sync state: %s\n", c.syncService.Status())

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to get pending count: %v\n", err)
		return nil
	}

	if pending > 0 {
		c.io.Printf("Pending upload: %d result(s)\n", pending)
		c.io.Println("Run 'streakbox sync' to synchronize with server.")
	} else {
		c.io.Println("All results synchronized with server")
	}

	return nil
}
