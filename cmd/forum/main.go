// Command forum is a terminal client for the forum service.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(&options{}).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
