package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

func newSegmentsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "segments <file>...",
		Short: "List program headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perFile, err := collectFiles(args, func(_ string, f *elf.File) ([]elf.ProgramHeader, error) {
				var segments []elf.ProgramHeader

				it := f.Programs()
				for {
					p, err := it.Next()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						return nil, err
					}

					segments = append(segments, p)
				}

				return segments, nil
			})
			if err != nil {
				return err
			}

			table := opts.newTable(cmd, "File", "Type", "Flags", "Offset", "VirtAddr", "FileSize", "MemSize", "Align")
			for i, segments := range perFile {
				for _, p := range segments {
					table.Append([]string{
						args[i],
						p.Type().String(),
						p.Flags().String(),
						fmt.Sprintf("0x%x", p.Offset()),
						fmt.Sprintf("0x%x", p.VirtualAddress()),
						fmt.Sprintf("0x%x", p.FileSize()),
						fmt.Sprintf("0x%x", p.MemSize()),
						fmt.Sprintf("0x%x", p.Align()),
					})
				}
			}
			table.Render()

			return nil
		},
	}
}
