package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/streakbox/streakbox/internal/share"
)

// runShareWrite — продюсерская сторона mailbox. Команда имитирует
// share extension: парсит текст и кладет результат в общий ящик,
// откуда его заберет процесс с 'streakbox watch'.
func (c *Cli) runShareWrite(ctx context.Context, args []string) error {
	if c.mailbox == nil {
		return fmt.Errorf("mailbox directory is not configured, pass --mailbox")
	}

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("missing shared text. Usage: streakbox share-write <text>")
	}

	result, err := share.Parse(text, time.Now())
	if err != nil {
		return fmt.Errorf("could not recognize shared text: %w", err)
	}

	if err := c.mailbox.Write(ctx, result); err != nil {
		return fmt.Errorf("failed to write to mailbox: %w", err)
	}

	c.io.Printf("Queued %s for ingestion\n", result.GameName)
	return nil
}
