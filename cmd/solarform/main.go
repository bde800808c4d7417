package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-solarform/pkg/form"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, form.ErrAborted) || errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
