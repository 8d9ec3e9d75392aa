package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/google/logger"
)

func initLogger(logFile string) {
	output := ioutil.Discard
	var fileErr error

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)

		if err != nil {
			fileErr = err
		} else {
			output = file
		}
	}

	logger.Init(applicationName, true, false, output)
	logger.SetFlags(log.LstdFlags)

	if fileErr != nil {
		logger.Warning("Could not open log file: " + fileErr.Error())
	}
}
