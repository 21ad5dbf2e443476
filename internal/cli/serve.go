package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/stream"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream maze generation over websockets",
		Long: `serve accepts websocket connections on /ws, generates and solves one maze
per connection and streams every carved wall and solution cell as JSON.
Spectators on /watch receive every session's events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			err = stream.NewServer(cfg, c.Logger).ListenAndServe(cmd.Context())
			if errors.Is(err, context.Canceled) {
				c.Logger.Info("server stopped")
			}
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}
