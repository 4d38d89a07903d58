package main

import (
	"os"

	"finance-tracker/internal/config"
	"finance-tracker/internal/server"
)

func main() {
	os.Exit(server.Main(config.ServiceAdmin))
}
