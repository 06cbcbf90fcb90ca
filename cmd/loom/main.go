package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/loomctl/loom/pkg/config"
	"github.com/loomctl/loom/pkg/controlplane"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/telemetry"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	logLevel   string
	logJSON    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Loom - distributed agent orchestration control plane",
	Long: `Loom federates agent clusters behind a single control plane:
spawn, exec, and migrate agents across clusters through one API while
the balancer picks placements and the registry tracks cluster health.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Loom version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit JSON logs")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the control-plane daemon",
	Long: `Start the Loom daemon: the gRPC control-plane API, the cluster
health monitor, the message bus, the task store, and (when enabled) the
WebSocket event gateway. The daemon runs until SIGINT or SIGTERM, then
drains gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if logJSON {
			cfg.Log.JSON = true
		}
		log.Init(log.Config{
			Level:      log.Level(cfg.Log.Level),
			JSONOutput: cfg.Log.JSON,
		})

		ctx := cmd.Context()
		if cfg.Telemetry.Enabled {
			tel, err := telemetry.Init(ctx, telemetry.Config{
				ServiceName:    cfg.Telemetry.ServiceName,
				ServiceVersion: Version,
				Endpoint:       cfg.Telemetry.OTLPEndpoint,
				Environment:    cfg.Telemetry.Environment,
			})
			if err != nil {
				return fmt.Errorf("initializing telemetry: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = tel.Shutdown(shutdownCtx)
			}()
		}

		cp, err := controlplane.New(cfg, controlplane.WithVersion(Version))
		if err != nil {
			return err
		}
		if err := cp.Start(); err != nil {
			return err
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		received := <-sig
		mainLog := log.WithComponent("main")
		mainLog.Info().Str("signal", received.String()).Msg("Shutting down")

		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return cp.Stop(stopCtx)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Loom version %s\nCommit: %s\nBuilt: %s\n", Version, Commit, BuildTime)
	},
}
