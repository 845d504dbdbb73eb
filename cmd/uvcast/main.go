package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/uvcast/internal/cli"
	"github.com/julianstephens/uvcast/internal/cli/forecasts"
	"github.com/julianstephens/uvcast/internal/cli/system"
	"github.com/julianstephens/uvcast/internal/config"
	"github.com/julianstephens/uvcast/internal/constants"
	"github.com/julianstephens/uvcast/internal/errors"
	"github.com/julianstephens/uvcast/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	APIURL    string        `name:"api-url" help:"Forecast endpoint; requests go to {api-url}/{postal code}." default:"${api_url}"`
	Timeout   time.Duration `help:"Request timeout (0 waits forever)." default:"${timeout}"`
	RateLimit float64       `help:"Maximum forecast requests per second (0 disables)." default:"${rate_limit}"`
	Burst     int           `help:"Requests allowed above the rate limit at once." default:"${burst}"`
	Debug     bool          `help:"Enable debug logging."`
	LogDir    string        `help:"Directory for log files." default:"${log_dir}"`

	Tui      system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"withargs"`
	Show     forecasts.ShowCmd `cmd:"" help:"Fetch and print the forecast for a postal code."`
	DebugCmd system.DebugCmd   `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Hourly UV index forecast by postal code"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"api_url":    cfg.BaseURL,
			"timeout":    cfg.Timeout.String(),
			"rate_limit": strconv.FormatFloat(cfg.RateLimit, 'g', -1, 64),
			"burst":      strconv.Itoa(cfg.Burst),
			"log_dir":    cfg.LogDir,
		},
	)

	cfg.BaseURL = CLI.APIURL
	cfg.Timeout = CLI.Timeout
	cfg.RateLimit = CLI.RateLimit
	cfg.Burst = CLI.Burst
	cfg.Debug = CLI.Debug
	cfg.LogDir = CLI.LogDir
	if err := cfg.Validate(); err != nil {
		ctx.FatalIfErrorf(err)
	}

	// the alt-screen TUI owns the terminal, so logs only go to the file there
	quiet := strings.HasPrefix(ctx.Command(), "tui")
	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir, Quiet: quiet}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appCtx := &cli.Context{
		Config: cfg,
		Source: cli.NewSource(cfg),
		Ctx:    runCtx,
	}
	logger.Debug("Running command", "command", ctx.Command(), "source", appCtx.Source.Name())

	if err := ctx.Run(appCtx); err != nil {
		stop()
		errors.Fatal(err)
	}
}
