package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/uvcast/internal/cli"
	"github.com/julianstephens/uvcast/internal/forecast"
	"github.com/julianstephens/uvcast/internal/router"
)

type DebugCmd struct {
	Route  *DebugRouteCmd  `cmd:"" help:"Show how a location is routed."`
	Parse  *DebugParseCmd  `cmd:"" help:"Parse a saved forecast response and dump it as JSON."`
	Config *DebugConfigCmd `cmd:"" help:"Show the effective configuration."`
}

type DebugRouteCmd struct {
	Location string `arg:"" help:"Path or URL to route, e.g. /zipcode/12345."`
}

func (cmd *DebugRouteCmd) Run(ctx *cli.Context) error {
	u, err := router.Resolve(router.Origin(), cmd.Location)
	if err != nil {
		return fmt.Errorf("invalid location %q: %w", cmd.Location, err)
	}

	route, matched := router.Parse(u)
	output := map[string]interface{}{
		"url":     u.String(),
		"matched": matched,
	}
	if matched {
		output["postal_code"] = route.PostalCode
	}

	return ctx.PrintJSON(output)
}

type DebugParseCmd struct {
	File string `arg:"" type:"existingfile" help:"File holding a response body."`
}

func (cmd *DebugParseCmd) Run(ctx *cli.Context) error {
	body, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	entries, err := forecast.ParseResponse(body)
	if err != nil {
		return err
	}

	return ctx.PrintJSON(entries)
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	output := map[string]interface{}{
		"api_url":    cfg.BaseURL,
		"docs_url":   cfg.APIDocsURL,
		"timeout":    cfg.Timeout.String(),
		"rate_limit": cfg.RateLimit,
		"burst":      cfg.Burst,
		"log_dir":    cfg.LogDir,
		"debug":      cfg.Debug,
	}
	if ctx.Source != nil {
		output["source"] = ctx.Source.Name()
	}
	return ctx.PrintJSON(output)
}
