package main

import (
	"os"

	"github.com/SkyMack/picrename/internal/clibase"
	"github.com/SkyMack/picrename/internal/renamer"
	log "github.com/sirupsen/logrus"
)

const (
	appName        = "picrename"
	appDescription = "Walks a directory tree, renames every image to a timestamped sequential name and converts it to the target format."
)

func main() {
	rootCmd := clibase.New(appName, appDescription)

	renamer.AddRunE(rootCmd, renamer.SpinnerReporter, os.Stdin)

	if err := rootCmd.Execute(); err != nil {
		log.WithFields(
			log.Fields{
				"app.name": appName,
				"error":    err.Error(),
			},
		).Fatal("application exited with an error")
	}
}
