package main

import (
	"os"

	"github.com/HosakaKeigo/mcp-server-google-forms/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
