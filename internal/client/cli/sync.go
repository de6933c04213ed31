package cli

import (
	"context"
	"fmt"
)

// RunSync разгружает очередь синхронизации
func (c *Cli) RunSync(ctx context.Context) error {
	pending := c.manager.Pending()
	if pending == 0 {
		c.io.Println("Nothing to sync")
		return nil
	}

	c.io.Printf("Syncing %d operation(s)...\n", pending)
	c.manager.SetOnline(ctx, true)
	if err := c.manager.Drain(ctx); err != nil {
		// Частичный результат уже применен; очередь сохранена
		c.io.Printf("Sync finished with errors: %v\n", err)
	}
	c.persistTree(ctx)

	if remaining := c.manager.Pending(); remaining > 0 {
		c.io.Printf("%d operation(s) still pending\n", remaining)
	} else {
		c.io.Println("All operations synced")
	}
	return nil
}

// RunFailed показывает операции, исчерпавшие все попытки
func (c *Cli) RunFailed(ctx context.Context) error {
	failed, err := c.manager.Failed(ctx)
	if err != nil {
		return fmt.Errorf("failed to read failed log: %w", err)
	}

	if len(failed) == 0 {
		c.io.Println("No failed operations")
		return nil
	}

	c.io.Printf("%d failed operation(s):\n", len(failed))
	for _, item := range failed {
		c.io.Printf("  %s  %-16s attempts=%d failed at %s\n",
			item.ID,
			item.Operation.Type,
			item.Attempts,
			item.FailedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return nil
}
