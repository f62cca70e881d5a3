package main

import (
	"fmt"
	"os"

	aggkitprover "github.com/agglayer/aggkit-prover"
	"github.com/agglayer/aggkit-prover/config"
	"github.com/urfave/cli/v2"
)

const appName = "aggkit-prover"

var flags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s), later files override earlier ones",
		Required: true,
	},
	&cli.StringFlag{
		Name:  config.FlagSaveConfigPath,
		Usage: "Directory where the merged and the final configuration are written",
	},
	&cli.BoolFlag{
		Name:  config.FlagDisableDefaultConfigVars,
		Usage: "Require every config var to be set in the config files",
	},
	&cli.BoolFlag{
		Name:  config.FlagAllowDeprecatedFields,
		Usage: "Log deprecated config fields instead of failing",
	},
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Generates aggchain proofs for the agglayer"
	app.Version = aggkitprover.Version
	app.Commands = []*cli.Command{
		{
			Name:   "version",
			Usage:  "Application version and build",
			Action: versionCmd,
		},
		{
			Name:   "run",
			Usage:  "Run the aggkit prover",
			Action: start,
			Flags:  flags,
		},
		{
			Name:   "config-schema",
			Usage:  "Print the JSON schema of the configuration file",
			Action: configSchemaCmd,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
