package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/floor-assistant/internal/bootstrap"
	"github.com/jhoicas/floor-assistant/pkg/config"
	"github.com/jhoicas/floor-assistant/pkg/jwt"
	"github.com/jhoicas/floor-assistant/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:          "floorctl",
		Short:        "Floor assistant — store inventory tools from the terminal",
		Long:         "floorctl runs the floor assistant's inventory tools and agent against the configured warehouse.",
		SilenceUsage: true,
	}

	root.AddCommand(toolsCmd(), callCmd(), chatCmd(), tokenCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup carga configuración, logger (a stderr) y dependencias.
func setup(ctx context.Context) (*bootstrap.Components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	return bootstrap.Build(ctx, cfg, log)
}

func signalContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// ── tools command ──

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(30 * time.Second)
			defer cancel()

			comps, err := setup(ctx)
			if err != nil {
				return err
			}
			defer comps.Close()

			for _, d := range comps.Registry.Defs() {
				fmt.Printf("%-26s %s\n", d.Name, d.Description)
			}
			return nil
		},
	}
}

// ── call command ──

func callCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke one tool and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argsJSON, _ := cmd.Flags().GetString("args")

			ctx, cancel := signalContext(60 * time.Second)
			defer cancel()

			comps, err := setup(ctx)
			if err != nil {
				return err
			}
			defer comps.Close()

			tool, err := comps.Registry.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(tool.Call(ctx, argsJSON))
			return nil
		},
	}
	cmd.Flags().StringP("args", "a", "{}", `Tool arguments as JSON, e.g. '{"color":"Red"}'`)
	return cmd
}

// ── chat command ──

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the floor assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			ctx, cancel := signalContext(2 * time.Minute)
			defer cancel()

			comps, err := setup(ctx)
			if err != nil {
				return err
			}
			defer comps.Close()

			res, err := comps.Agent.Chat(ctx, nil, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if verbose {
				for _, u := range res.ToolsUsed {
					fmt.Fprintf(os.Stderr, "[%s] %s\n", u.Name, u.Summary)
				}
			}
			fmt.Println(res.Reply)
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print the tools used to stderr")
	return cmd
}

// ── token command ──

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetInt("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, subject, cfg.Store.ID, cfg.JWT.Issuer, ttl)
			if err != nil {
				return err
			}
			fmt.Println(tok)
			return nil
		},
	}
	cmd.Flags().StringP("subject", "s", "", "Token subject (employee, kiosk or service id)")
	cmd.Flags().Int("ttl", 0, "Expiration in minutes (default: JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
