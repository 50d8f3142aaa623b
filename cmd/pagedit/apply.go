package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/dshills/pagedit/internal/engine/textarea"
	"github.com/dshills/pagedit/internal/toolbar"
)

type applyOptions struct {
	command   string
	caret     int
	selectEnd int
	write     bool
}

func newApplyCmd(root *rootOptions) *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply one toolbar command to a file without a terminal",
		Long: "Apply runs a toolbar command against FILE with the given selection and\n" +
			"prints the result, or rewrites FILE with --write. Offsets are in bytes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			table, err := toolbar.FromConfig(cfg.Toolbar)
			if err != nil {
				return err
			}
			defer table.Close()

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			end := opts.selectEnd
			if end < 0 {
				end = opts.caret
			}
			field := textarea.NewField(string(data))
			field.SetSelection(opts.caret, end)
			text, err := textarea.New(field)
			if err != nil {
				return err
			}

			tb := toolbar.New(text, table, nil, toolbar.WithLogger(logger))
			res := tb.Invoke(opts.command)
			if !res.OK() {
				return fmt.Errorf("apply %s: %w", opts.command, res.Err)
			}
			logger.Info("command applied", "command", opts.command, "caret", res.Caret)

			if !opts.write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), field.Value())
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			return os.WriteFile(path, []byte(field.Value()), info.Mode().Perm())
		},
	}
	cmd.Flags().StringVar(&opts.command, "command", "", "Toolbar command name (see \"pagedit commands\")")
	cmd.Flags().IntVar(&opts.caret, "caret", 0, "Selection start")
	cmd.Flags().IntVar(&opts.selectEnd, "select-end", -1, "Selection end (defaults to --caret)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite FILE instead of printing")
	_ = cmd.MarkFlagRequired("command")
	return cmd
}
