package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hasti0013/schedcompare/api"
)

var port int // Listen port; 0 uses the config

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling comparison over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if port != 0 {
			cfg.Port = port
		}
		app := api.NewApp(cfg)
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("Listening on %s, default quantum=%d", addr, cfg.RoundRobinTimeQuantum)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
