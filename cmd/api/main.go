package main

import (
	"context"
	"log"

	"github.com/rotafacil/transit-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("transit API exited: %v", err)
	}
}
