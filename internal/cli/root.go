package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/uvcast/internal/config"
	"github.com/julianstephens/uvcast/internal/forecast"
)

type Context struct {
	Config config.Config
	Source forecast.Source
	// Ctx bounds outbound requests; nil uses context.Background
	Ctx context.Context
	// Out receives command output; nil uses os.Stdout
	Out io.Writer
}

// NewSource builds the forecast source described by cfg
func NewSource(cfg config.Config) forecast.Source {
	client := forecast.NewClient(cfg.BaseURL, cfg.Timeout)
	return forecast.WithRateLimit(client, cfg.RateLimit, cfg.Burst)
}

func (c *Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// PrintJSON writes v as indented JSON followed by a newline
func (c *Context) PrintJSON(v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(c.Stdout(), string(jsonBytes))
	return err
}
