package main

import (
	"os"

	"github.com/envlink/envlink/cli"
	"github.com/envlink/envlink/cliout"
	"github.com/envlink/envlink/version"
)

// Set via ldflags at build time.
var (
	buildVersion string
	buildDate    string
	gitCommit    string
)

func main() {
	info := version.New("envlink")
	if buildVersion != "" {
		info.Version = buildVersion
	}
	if buildDate != "" {
		info.BuildDate = buildDate
	}
	if gitCommit != "" {
		info.GitCommit = gitCommit
	}

	root := cli.New(info)
	if err := root.Execute(); err != nil {
		cliout.Error("%s", err)
		os.Exit(cli.ExitCode(err))
	}
}
