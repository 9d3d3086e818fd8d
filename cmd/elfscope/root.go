package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/elfscope/elfscope/elf"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type rootOptions struct {
	config *config
	logger *slog.Logger
	output *outputConfig
}

func newRootCommand() *cobra.Command {
	configPath := ""
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "elfscope",
		Short:         "Inspect and patch ELF object files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			level, err := config.slogLevel()
			if err != nil {
				return err
			}

			handlerOpts := &slog.HandlerOptions{Level: level}

			var handler slog.Handler
			if config.LogFormat == "json" {
				handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
			} else {
				handler = slog.NewTextHandler(os.Stderr, handlerOpts)
			}

			opts.config = config
			opts.logger = slog.New(handler)
			slog.SetDefault(opts.logger)

			output, err := config.outputConfig()
			if err != nil {
				return err
			}
			opts.output = output

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	cmd.AddCommand(
		newHeaderCommand(opts),
		newSegmentsCommand(opts),
		newSectionsCommand(opts),
		newSymbolsCommand(opts),
		newDynamicCommand(opts),
		newRelocsCommand(opts),
		newDumpCommand(opts),
		newPatchCommand(opts),
	)

	return cmd
}

// collectFiles opens every input file read-only and runs extract on each
// concurrently. Results keep the order of the inputs regardless of which
// file finishes first.
func collectFiles[T any](paths []string, extract func(path string, f *elf.File) (T, error)) ([]T, error) {
	results := make([]T, len(paths))

	var group errgroup.Group
	for i, path := range paths {
		group.Go(func() error {
			f, err := elf.Open(path, elf.ReadOnly)
			if err != nil {
				return fmt.Errorf("failed to open '%s': %w", path, err)
			}
			defer f.Close()

			result, err := extract(path, f)
			if err != nil {
				return fmt.Errorf("failed to read '%s': %w", path, err)
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (o *rootOptions) newTable(cmd *cobra.Command, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	if !o.output.Borders {
		table.SetBorder(false)
		table.SetColumnSeparator("")
		table.SetHeaderLine(false)
	}

	return table
}

// clipName trims over-long names so tables stay readable; the limit comes
// from the output config.
func (o *rootOptions) clipName(name string) string {
	if o.output.MaxNameWidth > 3 && len(name) > o.output.MaxNameWidth {
		return name[:o.output.MaxNameWidth-3] + "..."
	}

	return name
}
