package cli

import (
	"context"
	"fmt"
	"sort"
)

func (c *Cli) runList(ctx context.Context) error {
	results, err := c.results.GetAllResults(ctx)
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}

	// Tombstones не показываем
	visible := results[:0]
	for _, r := range results {
		if !r.Deleted {
			visible = append(visible, r)
		}
	}

	if len(visible) == 0 {
		c.io.Println("No results yet.")
		c.io.Println()
		c.io.Println("Use 'streakbox submit <shared text>' to record your first puzzle.")
		return nil
	}

	// Свежие сверху
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Date != visible[j].Date {
			return visible[i].Date > visible[j].Date
		}
		return visible[i].GameName < visible[j].GameName
	})

	c.io.Printf("Found %d result(s):\n", len(visible))
	c.io.Println()

	for _, r := range visible {
		c.io.Printf("%s  %s", r.Date, r.GameName)
		if number := r.PuzzleNumber(); number != "" {
			c.io.Printf(" #%s", number)
		}
		if r.Score != nil {
			c.io.Printf("  %d/%d", *r.Score, r.MaxAttempts)
		} else if !r.Completed {
			c.io.Printf("  X/%d", r.MaxAttempts)
		}
		c.io.Println()
		c.io.Printf("   ID: %s\n", r.ID)
	}

	return nil
}
