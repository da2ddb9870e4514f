package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vending-machine/config"
	"vending-machine/internal/adapter/cli"
	"vending-machine/internal/service"
	"vending-machine/pkg/logger"

	ucli "github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &ucli.Command{
		Name:  "vending",
		Usage: "drinks vending machine console",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				Sources: ucli.EnvVars("VM_CONFIG_FILE"),
			},
		},
		Action: runConsole,
		Commands: []*ucli.Command{
			{
				Name:      "hash-password",
				Usage:     "print an Argon2id hash for admin.password_hash",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					if cmd.Args().Len() != 1 {
						return ucli.Exit("usage: vending hash-password <password>", 2)
					}
					hash, err := service.NewArgon2HashService().Hash(cmd.Args().First())
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, hash)
					return err
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runConsole serves the interactive menu on stdin/stdout. Logs go to stderr
// so they do not interleave with the prompt.
func runConsole(ctx context.Context, cmd *ucli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithOutput(cfg.Log.Level, cfg.Log.Pretty, os.Stderr)

	auditSvc := service.NewAuditService(nil, log)
	machine, err := service.NewConfiguredMachine(cfg.Machine, auditSvc, log)
	if err != nil {
		return fmt.Errorf("stock machine: %w", err)
	}

	return cli.NewDispatcher(machine, os.Stdout, log).Run(ctx, os.Stdin)
}
