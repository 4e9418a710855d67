package cli

import (
	"fmt"
	"strings"

	"cardpick/internal/docs"

	"github.com/spf13/cobra"
)

type docTopics []string

func (d docTopics) Rows() [][]string {
	out := make([][]string, 0, len(d))
	for _, t := range d {
		out = append(out, []string{t})
	}
	return out
}

type docTopic struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func (d docTopic) Rows() [][]string {
	lines := strings.Split(strings.TrimRight(d.Markdown, "\n"), "\n")
	out := make([][]string, 0, len(lines))
	for _, ln := range lines {
		out = append(out, []string{ln})
	}
	return out
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show help topics (keys, vcard, config)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, docTopics(docs.Topics()), nil)
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, errUsage("unknown docs topic: %q (run `cardpick docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, docTopic{Topic: strings.ToLower(topic), Markdown: body}, nil)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	return cmd
}
