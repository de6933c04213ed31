package cli

import (
	"context"
	"fmt"
)

// RunStatus показывает состояние сессии и очереди синхронизации
func (c *Cli) RunStatus(ctx context.Context) error {
	authenticated, err := c.auth.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	if authenticated {
		c.io.Println("Session:   active")
	} else {
		c.io.Println("Session:   not authenticated")
	}

	c.io.Printf("Notes:     %d cached locally\n", c.tree.Len())
	c.io.Printf("Pending:   %d operation(s) in sync queue\n", c.manager.Pending())

	failed, err := c.manager.Failed(ctx)
	if err != nil {
		return fmt.Errorf("failed to read failed log: %w", err)
	}
	c.io.Printf("Failed:    %d operation(s)\n", len(failed))

	lastSync, err := c.manager.LastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", lastSync.Format("2006-01-02 15:04:05"))
	}

	return nil
}
