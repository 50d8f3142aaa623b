package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/dshills/pagedit/internal/procstatus"
)

// errProcessFailed reports a process that completed unsuccessfully.
var errProcessFailed = errors.New("process failed")

func newStatusCmd(root *rootOptions) *cobra.Command {
	var (
		baseURL string
		label   string
	)
	cmd := &cobra.Command{
		Use:   "status ID",
		Short: "Follow a server process until it finishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.Status.BaseURL = baseURL
			}
			if label != "" {
				cfg.Status.Label = label
			}
			if cfg.Status.BaseURL == "" {
				return errors.New("no status base URL: set status.baseUrl or --base-url")
			}

			m := procstatus.FromConfig(args[0], cfg.Status, lineRenderer(cmd.OutOrStdout()),
				procstatus.WithLogger(pslog.Ctx(cmd.Context())))
			state, err := m.Run(cmd.Context())
			if err != nil {
				return err
			}
			if state == procstatus.Failed {
				return errProcessFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Wiki base URL (overrides status.baseUrl)")
	cmd.Flags().StringVar(&label, "label", "", "Process kind shown in messages")
	return cmd
}

// lineRenderer prints each distinct message on its own line.
func lineRenderer(w io.Writer) procstatus.Renderer {
	var last string
	return procstatus.RendererFunc(func(m procstatus.Message) {
		if m.Text == last {
			return
		}
		last = m.Text
		fmt.Fprintln(w, m.Text)
	})
}
