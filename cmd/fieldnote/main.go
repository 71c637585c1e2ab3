/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"

	"github.com/fieldnote/fieldnote/pkg/extensions"
	"github.com/fieldnote/fieldnote/pkg/survey"
)

//go:embed version
var version string

// log level flag (--verbose)
var verbose bool

var red = color.New(color.FgRed).SprintFunc()
var green = color.New(color.FgGreen).SprintFunc()

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"fieldnote",
		"Field observation data utility",
		args,
		ver,
		newCheckCmd(),
		newRewriteCmd(),
		newStoreCmd(),
	)

	// cobrau.PrepareRootCmd already registers --verbose/-v; registering it
	// again panics in pflag, so bind to the existing flag instead
	cobra.OnInitialize(func() {
		verbose, _ = rootCmd.PersistentFlags().GetBool("verbose")
		if verbose {
			logger.SetLogLevel(logger.LogLevelVerbose)
		}
	})

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

// newRegistry builds the registry of known grammars. New grammars are
// added here.
func newRegistry() extensions.IRegistry {
	reg := extensions.NewRegistry()
	survey.Register(reg)
	return reg
}
