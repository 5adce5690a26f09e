package main

import (
	"flag"
	"log"

	"lakd/internal/di"
	"lakd/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "force debug log level")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		log.Fatal(err)
	}
}
