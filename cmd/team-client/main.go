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

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/pdz-labs/team-roster/internal/client"
)

const defaultTarget = "localhost:8980"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [target]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  target  The server to connect to. Defaults to %s\n", defaultTarget)
		flag.PrintDefaults()
	}
	flag.Parse()

	target := defaultTarget
	if flag.NArg() > 0 {
		target = flag.Arg(0)
	}

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("team-client failed to connect to %s: %v", target, err)
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client.New(conn, logger).Run(ctx)
}
