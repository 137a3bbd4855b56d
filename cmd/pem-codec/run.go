// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/pem-codec/src/cli"
	"github.com/H0llyW00dzZ/pem-codec/src/logger"
	verpkg "github.com/H0llyW00dzZ/pem-codec/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	os.Exit(run(context.Background(), logger.NewCLILogger()))
}

// run executes the CLI and maps its outcome to an exit code.
func run(parent context.Context, log logger.Logger) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			// ErrorLog follows --log-format.
			errLog := cli.ErrorLog
			if errLog == nil {
				errLog = log
			}
			errLog.Printf("Error: %v", err)
			return 1
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the CLI a moment to clean up
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return 130 // Standard exit code for SIGINT
	}

	return 0
}
