package cli

import (
	"context"
	"fmt"
)

// RunRegister регистрирует нового пользователя
func (c *Cli) RunRegister(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	result, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Printf("User %s registered (id: %s)\n", result.Username, result.UserID)
	c.io.Println("Run 'gophnotes login' to start a session")
	return nil
}
