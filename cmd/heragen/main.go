// Command heragen generates HERA ERP CRUD pages from entity presets.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/syssam/heragen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx)
	stop()
	os.Exit(code)
}
