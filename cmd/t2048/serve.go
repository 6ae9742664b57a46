package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/platform/web"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve 2048 over SSH and WebSocket",
	Long: `Start an SSH server and an HTTP server for remote play.

Every SSH session and every WebSocket connection gets its own board.
Finished runs from all players go to the same history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Pass an empty address to disable a listener.

Examples:
  t2048 serve                           # SSH on :23234, HTTP on :8080
  t2048 serve --ssh :2222 --http ""     # SSH only
  t2048 serve --host-key ./my_host_key  # Use specific host key

Play with:
  ssh localhost -p 23234
  open http://localhost:8080`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP/WebSocket server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("t2048")

	if flagSSHAddr == "" && flagHTTPAddr == "" {
		logger.Error("nothing to serve: both --ssh and --http are empty")
		os.Exit(1)
	}

	gameCfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		gameCfg = config.DefaultT2048Config()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var servers []func(context.Context) error

	if flagSSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.TickRate = flagFPS
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

		newGame := func() core.Game { return t2048.New() }
		sshServer, sshErr := tui.NewSSHServer(sshCfg, newGame, store, logger.WithPrefix("ssh"))
		if sshErr != nil {
			logger.Error("could not create SSH server", "error", sshErr)
			os.Exit(1)
		}
		servers = append(servers, sshServer.ListenAndServe)
		fmt.Printf("SSH:  ssh localhost -p %s\n", portOf(sshServer.Addr()))
	}

	if flagHTTPAddr != "" {
		webServer := web.NewServer(flagHTTPAddr, gameCfg, store, logger.WithPrefix("web"))
		servers = append(servers, webServer.ListenAndServe)
		fmt.Printf("HTTP: http://localhost:%s\n", portOf(flagHTTPAddr))
	}
	fmt.Println("Press Ctrl+C to stop")

	errs := make(chan error, len(servers))
	var wg sync.WaitGroup
	for _, serve := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := serve(ctx); err != nil {
				errs <- err
				stop()
			}
		}()
	}
	wg.Wait()
	close(errs)

	failed := false
	for err := range errs {
		logger.Error("server error", "error", err)
		failed = true
	}
	if failed {
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
