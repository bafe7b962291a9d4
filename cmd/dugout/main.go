package main

import (
	"dugout/internal/cli"
)

func main() {
	cli.Execute()
}
