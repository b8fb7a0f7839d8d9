package main

import (
	"context"
	"log"
	"os"

	"github.com/NVIDIA/versiontheca/pkg/api"
)

func main() {
	configPath := os.Getenv("VERSIONTHECA_CONFIG")
	if err := api.Serve(context.Background(), configPath); err != nil {
		log.Fatal(err)
	}
}
