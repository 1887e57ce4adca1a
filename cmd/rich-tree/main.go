package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/richtree/internal/cli"
	"github.com/temirov/richtree/internal/utils"
)

// main is the entry point for the rich-tree command.
func main() {
	logLevel := zap.NewAtomicLevel()
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(logLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, logLevel); applicationExecutionError != nil {
		if cli.IsReported(applicationExecutionError) {
			_ = loggerInstance.Sync()
			os.Exit(1)
		}
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
