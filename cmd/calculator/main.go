// Command calculator evaluates arithmetic expressions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/zephyrtronium/calculator/cmd/calculator/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
