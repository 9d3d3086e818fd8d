package main

import (
	"encoding/hex"
	"fmt"

	"github.com/elfscope/elfscope/elf"
	"github.com/elfscope/elfscope/internal/align"
	"github.com/spf13/cobra"
)

func newDumpCommand(opts *rootOptions) *cobra.Command {
	sectionName := ""
	offset := uint64(0)
	length := uint64(0)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex-dump the contents of one section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := elf.Open(args[0], elf.ReadOnly)
			if err != nil {
				return fmt.Errorf("failed to open '%s': %w", args[0], err)
			}
			defer f.Close()

			data, err := f.SectionDataByName(sectionName)
			if err != nil {
				return fmt.Errorf("failed to read section '%s': %w", sectionName, err)
			}

			// Snap the window start to a row boundary so offsets line up
			// with the dump's left-hand column.
			start := align.Down(offset, 16)
			if start >= uint64(len(data)) {
				return fmt.Errorf("offset 0x%x is past the end of section '%s' (0x%x bytes)", offset, sectionName, len(data))
			}

			window := data[start:]
			if length > 0 && length < uint64(len(window)) {
				window = window[:length]
			}

			opts.logger.Debug("dumping section window",
				"section", sectionName,
				"start", fmt.Sprintf("0x%x", start),
				"count", len(window),
			)

			dumper := hex.Dumper(cmd.OutOrStdout())
			defer dumper.Close()

			if _, err := dumper.Write(window); err != nil {
				return fmt.Errorf("failed to write dump: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&sectionName, "section", "s", ".text", "Name of the section to dump")
	cmd.Flags().Uint64Var(&offset, "offset", 0, "Byte offset within the section to start from")
	cmd.Flags().Uint64Var(&length, "length", 0, "Maximum number of bytes to dump (0 = all)")

	return cmd
}
