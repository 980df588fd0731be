package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/orbs"
	"github.com/vovakirdan/orbs/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the orbs SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker.
Attempts are stored per-server under the SSH user name, and solver
results are shared through the database cache.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.orbs/host_key

Examples:
  orbs serve                           # Listen on the configured address
  orbs serve --ssh :2222               # Listen on port 2222
  orbs serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	srvCfg := cfg.Server
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	// Session events are worth seeing by default
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(log.InfoLevel)
	}
	srvLogger := logger.WithPrefix("orbs-ssh")

	lvls, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	env := tui.Env{
		Store:  store,
		Solver: orbs.NewService(store, srvLogger, cfg.Solver.Cache),
		Config: cfg,
		Theme:  tui.ThemeFromConfig(cfg.Render.Colors),
		Logger: srvLogger,
	}

	server, err := tui.NewSSHServer(srvCfg, env, lvls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting orbs SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
