package main

import (
	"fmt"
	"os"
	"time"

	"github.com/uptudev/forestry/logger"
)

// Example demonstrating forestry usage.
func main() {
	logFile := ""

	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	// Usage: ./forestry [logfile]
	// Example: ./forestry ./app.log
	log := logger.New()
	opts := []logger.Option{logger.AutoColor(), logger.Timer()}
	if logFile != "" {
		opts = append(opts, logger.FilePath(logFile))
	}
	if _, err := log.Configure(opts...); err != nil {
		fmt.Fprintf(os.Stderr, "forestry: %v\n", err)
		os.Exit(1)
	}
	defer log.Close() // Don't forget to close the log file!

	if logFile != "" {
		log.Infof("logging to file: %s", logFile)
	} else {
		log.Info("logging to console only (provide a log file path to enable file logging)")
	}

	log.Debugf("starting at %v", time.Now().Format(time.RFC3339))
	log.Info("info")
	log.Warn("warning")
	log.Error("error")
	log.Success("success")
	log.Critical("critical")

	// Header-less output
	log.Configure(logger.NoIndex(), logger.NoSymbol())
	log.Info("no header")

	// Back to defaults; the log file stays open but mirroring is off
	log.Configure(logger.Reset())
	log.Info("reset")

	// Ordered asynchronous logging
	async := log.Async(16)
	pending := []<-chan error{
		async.Info("queued first"),
		async.Warn("queued second"),
	}
	for _, done := range pending {
		if err := <-done; err != nil {
			fmt.Fprintf(os.Stderr, "forestry: %v\n", err)
		}
	}
	async.Close()
}
