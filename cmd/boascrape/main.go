package main

import (
	"context"

	"boascrape/cmd/boascrape/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
