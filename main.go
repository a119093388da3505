package main

import (
	"log"
	"os"

	"github.com/Yashshinde43/tinyurl/cmd/api/app"
)

// main duplicates the cmd/api entrypoint so `go run .` works from the
// repo root.
func main() {
	if err := app.Run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
