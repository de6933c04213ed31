package cli

import "context"

// RunLogout удаляет локальную сессию
func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out")
	return nil
}
