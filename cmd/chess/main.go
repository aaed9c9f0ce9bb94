package main

import (
	"log"
	"os"

	"github.com/Tyler-Burley/Chess-Terminal/internal/tui"
)

func main() {
	if err := tui.New(os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal(err)
	}
}
