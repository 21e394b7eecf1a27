package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/td/pkg/printers"
	"tableflip.dev/td/pkg/store"
	"tableflip.dev/td/pkg/tui/app"
	"tableflip.dev/td/pkg/tui/ui"
)

// New builds the root command. The whole surface is `td [database]`: one
// optional positional argument selecting the database file, no flags.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "td [database]",
		Short: "Keep a small list of tasks in a keyboard-driven terminal interface.",
		Args:  cobra.MaximumNArgs(1),
		Example: `
td
td ./project-tasks.json
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := databasePath(args)
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{}
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				pp.Notice("the database file %s does not exist, creating a new one", path)
			}

			db := store.NewFile(path)
			st, err := db.Load()
			if err != nil {
				return fmt.Errorf("loading database: %w", err)
			}

			return app.Run(&ui.Session{Store: st, Path: path, DB: db})
		},
	}
	return cmd
}

func databasePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.DatabasePath(), nil
}
