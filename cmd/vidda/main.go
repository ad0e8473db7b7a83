package main

import (
	"fmt"
	"os"

	"github.com/mmcdole/vidda/internal/domain"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newRootCmd(openEnv).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", domain.UserMessage(err))
		os.Exit(1)
	}
}
