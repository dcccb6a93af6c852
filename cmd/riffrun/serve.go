package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riffrun/internal/metrics"
	"github.com/vovakirdan/riffrun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve [game]",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent session.
Sessions are stored per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.riffrun/host_key

Examples:
  riffrun serve                           # Listen on :23234 with auto-generated key
  riffrun serve riff_endless --ssh :2222  # Endless sessions on port 2222
  riffrun serve --metrics :2112           # Expose Prometheus metrics
  riffrun serve --metrics ""              # Disable metrics

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	addTuningFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", ":2112", "Prometheus metrics address (empty to disable)")
}

func runServe(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	riffCfg, err := loadRiffConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      gameID,
		Riff:        riffCfg,
		TickRate:    flagFPS,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rec *metrics.Recorder
	if flagMetricsAddr != "" {
		rec = metrics.NewRecorder()
		go func() {
			if err := rec.Serve(ctx, flagMetricsAddr, logger); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("riffrun-ssh"), rec)
	if err != nil {
		return err
	}

	logger.Info("connect with", "command", "ssh localhost -p "+portOf(flagSSHAddr))
	return server.ListenAndServe(ctx)
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
