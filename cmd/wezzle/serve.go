package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wezzle/internal/platform/tui"
	"github.com/vovakirdan/tui-wezzle/internal/platform/web"
	"github.com/vovakirdan/tui-wezzle/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wezzle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all users share the same leaderboard).
With --http, the leaderboard is also served as a JSON API.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wezzle/host_key

Examples:
  wezzle serve                           # Listen on :23234 with auto-generated key
  wezzle serve --ssh :2222               # Listen on port 2222
  wezzle serve --host-key ./my_host_key  # Use specific host key
  wezzle serve --http :8080              # Also serve /api/scores/wezzle

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP score API address (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	// Server events go to stderr even without --log-file
	srvLogger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wezzle-ssh",
		Level:           logger.GetLevel(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Difficulty:  difficulty,
		Logger:      srvLogger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	httpDone := make(chan struct{})
	if flagHTTPAddr != "" {
		go func() {
			defer close(httpDone)
			serveHTTP(ctx, srvLogger.WithPrefix("wezzle-http"))
			// The SSH side keeps running if the API fails
		}()
	} else {
		close(httpDone)
	}

	fmt.Printf("Starting wezzle SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe(ctx)
	stop()
	<-httpDone

	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}

// serveHTTP runs the JSON score API on its own database handle until ctx
// is done.
func serveHTTP(ctx context.Context, l *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		l.Error("score API disabled", "err", err)
		return
	}
	defer store.Close()

	if err := web.NewServer(flagHTTPAddr, store, l).ListenAndServe(ctx); err != nil {
		l.Error("HTTP server error", "err", err)
	}
}
