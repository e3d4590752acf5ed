package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"mxchip-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("fkdtoa failed")
		os.Exit(1)
	}
}
