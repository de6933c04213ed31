package cli

import (
	"context"
	"fmt"
	"os"
)

// Run выполняет команду и завершает процесс с кодом 1 при ошибке
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.RunRegister(ctx)
	case "login":
		err = c.RunLogin(ctx)
	case "logout":
		err = c.RunLogout(ctx)
	case "status":
		err = c.RunStatus(ctx)
	case "sync":
		err = c.RunSync(ctx)
	case "failed":
		err = c.RunFailed(ctx)
	case "note":
		err = c.RunNote(ctx, args)
	case "task":
		err = c.RunTask(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
