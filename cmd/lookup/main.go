package main

import (
	"context"
	"log"
	"os"

	"github.com/partscout/backend/cmd/lookup/commands"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)
	commands.ExecuteContext(context.Background())
}
