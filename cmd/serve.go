package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
	"github.com/JoshuaShepherd/rethink-content/internal/logger"
	"github.com/JoshuaShepherd/rethink-content/internal/site"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content as a website",
	Long: `Start an HTTP server rendering the materialized content units as
HTML pages, with a JSON API alongside. Content edits on disk are picked
up without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv, err := site.NewServer(content.NewStore(cfg.ContentRoot))
		if err != nil {
			return err
		}
		defer srv.Close()

		if err := srv.Watch(); err != nil {
			// An unwatchable content root (often just absent) is not
			// fatal; the server falls back to caching until restart.
			logger.Warn("content watch disabled: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s\n", cfg.ContentRoot, addr)
		return http.ListenAndServe(addr, srv)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address override")
	rootCmd.AddCommand(serveCmd)
}
