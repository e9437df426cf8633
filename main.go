package main

import (
	"log"

	"github.com/newrelic/go-jsgen/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
