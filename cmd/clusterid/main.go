package main

import (
	"context"
	"os/signal"
	"syscall"

	pkglog "github.com/tinychameleon/clusterid/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("clusterid failed")
	}
}
