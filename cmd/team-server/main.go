package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pdz-labs/team-roster/internal/config"
	"github.com/pdz-labs/team-roster/internal/roster"
	"github.com/pdz-labs/team-roster/internal/server"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	listenAddr := flag.String("listen-addr", "", "gRPC listen address (overrides config)")
	configPath := flag.String("config", "", "Path to config.yaml (optional)")
	rosterPath := flag.String("roster", "", "Path to the roster database (overrides config)")
	flag.Parse()
	if *showVersion {
		fmt.Printf("team-server version=%s commit=%s build_date=%s\n", version, commit, buildDate)
		return
	}

	cfg := config.LoadFromPath(*configPath)
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *rosterPath != "" {
		cfg.RosterPath = *rosterPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := roster.LoadFile(cfg.RosterPath)
	if err != nil {
		log.Fatalf("team-server failed to load roster: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("team-server starting")
	if err := server.New(cfg, store, logger).Run(ctx); err != nil {
		log.Fatalf("team-server failed: %v", err)
	}
	log.Println("team-server stopped")
}
