package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cardpick/internal/format"
	"cardpick/internal/store"
	"cardpick/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string
	DebugLog   string

	log      *slog.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "cardpick",
		Short:        "Pick contacts out of a vCard file and export just those",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  cardpick

  # Open a file directly (shortcut for: cardpick open contacts.vcf)
  cardpick contacts.vcf

  # Scriptable commands
  cardpick list contacts.vcf --format text
  cardpick export contacts.vcf --select 0,4,7 --out family.vcf
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, "")
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lg, closeFn, err := newLogger(app.DebugLog)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = lg
		app.closeLog = closeFn
		app.log.Debug("command start", "cmd", cmd.CommandPath(), "args", args)
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog == nil {
			return nil
		}
		return app.closeLog()
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CARDPICK_FORMAT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr("CARDPICK_DEBUG_LOG", ""), "Append structured debug logs to this file")

	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App, path string) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		app.logger().Warn("config unreadable; using defaults", "err", err)
		cfg = &store.GlobalConfig{}
	}
	h, err := store.OpenHistory()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Path:    path,
		Config:  cfg,
		History: h,
		Log:     app.logger(),
	})
}

// loadCards reads path into a fresh store.
func loadCards(app *App, path string) (*store.Store, error) {
	st := store.New()
	n, err := st.LoadFile(path)
	if err != nil {
		return nil, err
	}
	app.logger().Debug("cards loaded", "path", path, "count", n)
	return st, nil
}

func (app *App) logger() *slog.Logger {
	if app.log == nil {
		app.log = discardLogger()
	}
	return app.log
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

type envelope struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

func (e envelope) Rows() [][]string {
	if t, ok := e.Data.(format.Texter); ok {
		return t.Rows()
	}
	return [][]string{{fmt.Sprint(e.Data)}}
}

func writeOut(cmd *cobra.Command, app *App, data any, meta any) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: data, Meta: meta}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
