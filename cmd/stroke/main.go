package main

import (
	"os"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/cmd"
	"github.com/grovetools/stroke/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	failed, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	if _, ok := errors.As(err); ok {
		verbose, _ := failed.Flags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
	} else {
		cli.PrintError(failed, err)
	}
	os.Exit(1)
}
