package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/streakbox/streakbox/internal/share"
)

func (c *Cli) runSubmit(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		// Без аргумента читаем текст интерактивно
		input, err := c.io.ReadInput("Shared text: ")
		if err != nil {
			return fmt.Errorf("failed to read shared text: %w", err)
		}
		text = input
	}

	result, err := share.Parse(text, time.Now())
	if err != nil {
		return fmt.Errorf("could not recognize shared text: %w", err)
	}

	accepted, err := c.ingestor.Ingest(ctx, result)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	if !accepted {
		c.io.Printf("Already recorded: %s for %s\n", result.GameName, result.Date)
		return nil
	}

	c.io.Printf("Recorded %s", result.GameName)
	if number := result.PuzzleNumber(); number != "" {
		c.io.Printf(" #%s", number)
	}
	if result.Score != nil {
		c.io.Printf(" — %d/%d", *result.Score, result.MaxAttempts)
	} else if !result.Completed {
		c.io.Printf(" — X/%d", result.MaxAttempts)
	}
	c.io.Printf(" (%s)\n", result.Date)

	return nil
}
