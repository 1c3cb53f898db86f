package main

import (
	"os"

	"github.com/ObaroAwowede/Shopify-frontend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
