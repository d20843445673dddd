package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	debug      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront services: users, products, orders and the API gateway",
	Long: `Each subcommand runs one independent service on its own fixed port:

  users     :9001  user CRUD
  products  :9002  product catalog
  orders    :9003  order placement
  gateway   :8081  routing, caching and CORS in front of the services`,
	SilenceUsage: true,
}

// Execute runs the root command until one of shutdownSignals arrives.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log at debug level")
}
