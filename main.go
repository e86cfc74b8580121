// Command ersatztv-windows is the ErsatzTV tray launcher. Build with
// -ldflags "-H windowsgui" so no console window is attached.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"github.com/ersatztv/ersatztv-windows/internal/desktop"
	"github.com/ersatztv/ersatztv-windows/internal/version"
)

func main() {
	opts := desktop.DefaultOptions()

	logger := desktop.NewLogger(opts, zapcore.InfoLevel)
	defer logger.Sync()

	logger.Infow("starting ErsatzTV tray", "version", version.Full())

	app := desktop.NewApp(opts, logger)

	// Treat SIGINT/SIGTERM like the Exit menu entry so the companion is never orphaned
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Infow("received signal", "signal", sig.String())
		app.Actions().RequestExit()
	}()

	if err := app.Run(); err != nil {
		logger.Fatalw("unrecoverable error", "error", err)
	}

	logger.Info("tray stopped")
}
