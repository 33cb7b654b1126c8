// Command chesscore-uci runs the engine as a UCI-speaking subprocess,
// reading commands from stdin and writing responses to stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ravensworth/chesscore/internal/uci"
)

func main() {
	controller := uci.NewController(os.Stdout)
	controller.SetLogger(func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})
	if err := controller.Run(os.Stdin); err != nil {
		log.Fatalf("chesscore-uci: %s", err)
	}
}
