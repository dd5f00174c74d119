// Package cli exposes the client operations as cobra commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Adda-Baaj/placeholder-client/internal/app"
	"github.com/Adda-Baaj/placeholder-client/internal/config"
	"github.com/Adda-Baaj/placeholder-client/internal/logger"
	"github.com/Adda-Baaj/placeholder-client/internal/storage"
	"github.com/spf13/cobra"
)

// runtime carries state shared by every command.
type runtime struct {
	cfg *config.Config
	log logger.Logger
}

// NewRootCmd builds the command tree for the given config.
func NewRootCmd(cfg *config.Config, log logger.Logger) *cobra.Command {
	rt := &runtime{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "placeholder [command] [flags]",
		Short:         "Client for the JSONPlaceholder users API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "users collection URL")
	root.PersistentFlags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory comment files are written to")

	root.AddCommand(
		newUsersCmd(rt),
		newCommentsCmd(rt),
		newTasksCmd(rt),
		newHistoryCmd(rt),
		newDemoCmd(rt),
	)
	return root
}

// withApp builds the app for one command invocation and releases it afterwards,
// so help output never touches storage or publishers. The export journal is
// left closed; commands that read or write it use withJournal.
func (rt *runtime) withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg := rt.normalized()
	cfg.StorageType = storage.TypeNone
	return rt.run(cmd, &cfg, fn)
}

// withJournal is withApp with the configured export journal opened.
func (rt *runtime) withJournal(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg := rt.normalized()
	return rt.run(cmd, &cfg, fn)
}

func (rt *runtime) normalized() config.Config {
	cfg := *rt.cfg
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return cfg
}

func (rt *runtime) run(cmd *cobra.Command, cfg *config.Config, fn func(a *app.App) error) (err error) {
	a, err := app.New(cmd.Context(), cfg, rt.log, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(a)
}

// readPayload returns the request body from --data, or from --file ("-" for stdin).
func readPayload(cmd *cobra.Command, data, file string) (string, error) {
	switch {
	case data != "" && file != "":
		return "", fmt.Errorf("use either --data or --file, not both")
	case data != "":
		return data, nil
	case file == "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read payload file: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("a JSON payload is required (--data or --file)")
	}
}
