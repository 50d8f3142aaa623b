package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/pagedit/internal/markup"
	"github.com/dshills/pagedit/internal/toolbar"
)

func newCommandsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the toolbar commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			table, err := toolbar.FromConfig(cfg.Toolbar)
			if err != nil {
				return err
			}
			defer table.Close()
			return writeCommands(cmd.OutOrStdout(), table)
		},
	}
}

func writeCommands(w io.Writer, table toolbar.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBUTTON\tKIND")
	for _, d := range table {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, toolbar.ButtonID(d.Name), describe(d.Command))
	}
	return tw.Flush()
}

func describe(c markup.Command) string {
	switch c := c.(type) {
	case markup.Wrap:
		return fmt.Sprintf("wrap %s %s", c.Open, c.Close)
	case markup.Header:
		return "header " + c.Marker
	case markup.ListItem:
		return "list " + c.Bullet
	case *markup.Script:
		return "script"
	default:
		return fmt.Sprintf("%T", c)
	}
}
