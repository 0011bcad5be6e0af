package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/soundgram/internal/formatter"
	"github.com/desertthunder/soundgram/internal/server"
	"github.com/desertthunder/soundgram/internal/shared"
	"github.com/urfave/cli/v3"
)

// Resolve resolves one playlist URL and prints or saves it in the requested format.
func (r *Runner) Resolve(ctx context.Context, cmd *cli.Command) error {
	rawURL := cmd.StringArg("url")
	format := cmd.String("format")
	outputFile := cmd.String("output")

	if rawURL == "" {
		return fmt.Errorf("%w: playlist URL", shared.ErrMissingArgument)
	}

	r.logger.Debug("resolving playlist", "url", rawURL, "service", r.resolver.Name())

	playlist, err := r.resolver.ResolvePlaylist(ctx, rawURL)
	if err != nil {
		status, detail := server.StatusFor(err)
		return fmt.Errorf("resolve failed (%d %s): %w", status, detail, err)
	}

	if format == formatter.FormatText && outputFile == "" {
		return r.writePlain("%s", formatter.RenderStyled(playlist))
	}

	data, err := formatter.Export(playlist, format, cmd.Bool("pretty"))
	if err != nil {
		return err
	}

	if outputFile == "" {
		_, err := r.output.Write(data)
		return err
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	r.logger.Infof("playlist exported to %v with %v tracks", outputFile, len(playlist.Tracks))
	return r.writePlain("✓ Playlist exported to %s\n", outputFile)
}

// ConfigInit writes the example configuration to the given path (default config.toml).
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = "config.toml"
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	return r.writePlain("✓ Config written to %s\n", path)
}

// ConfigShow prints the effective configuration as JSON.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	if r.config == nil {
		return errors.New("no configuration loaded")
	}
	return r.writeJSON(r.config, true)
}
