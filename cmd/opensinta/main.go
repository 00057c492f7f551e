// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

// Command opensinta browses the SINTA journal catalogue from the terminal.
//
// The dataset is read from a local file (--file) or fetched over HTTP
// (--url). Flag defaults come from the same environment as the API server
// (DATASET_PATH, DATASET_URL, DATASET_TIMEOUT, PAGE_SIZE), .env included.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opensinta/opensinta/cmd/opensinta/commands"
	"github.com/opensinta/opensinta/internal/platform/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(commands.ExecuteContext(ctx, cfg))
}
