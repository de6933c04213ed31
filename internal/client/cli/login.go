package cli

import (
	"context"
	"fmt"
)

// RunLogin выполняет вход и сразу пытается разгрузить накопленную очередь
func (c *Cli) RunLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Printf("Logged in as %s\n", session.Username)

	// Накопленные в офлайне операции уходят на сервер при первом же входе
	if pending := c.manager.Pending(); pending > 0 {
		c.io.Printf("Draining %d pending operation(s)...\n", pending)
	}
	c.manager.SetOnline(ctx, true)
	c.persistTree(ctx)

	if remaining := c.manager.Pending(); remaining > 0 {
		c.io.Printf("%d operation(s) still pending, run 'gophnotes sync' to retry\n", remaining)
	}
	return nil
}
