package main

import (
	"fmt"

	aggkitprover "github.com/agglayer/aggkit-prover"
	"github.com/agglayer/aggkit-prover/config"
	"github.com/urfave/cli/v2"
)

func versionCmd(cliCtx *cli.Context) error {
	aggkitprover.PrintVersion(cliCtx.App.Writer)

	return nil
}

func configSchemaCmd(cliCtx *cli.Context) error {
	schema, err := config.JSONSchema()
	if err != nil {
		return fmt.Errorf("generating config schema: %w", err)
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, string(schema))
	return err
}
