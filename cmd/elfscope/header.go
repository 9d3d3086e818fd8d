package main

import (
	"fmt"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

func newHeaderCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>...",
		Short: "Print ELF file headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := collectFiles(args, func(_ string, f *elf.File) (elf.Header, error) {
				return f.Header(), nil
			})
			if err != nil {
				return err
			}

			table := opts.newTable(cmd, "File", "Class", "Data", "Type", "Machine", "Entry", "Segments", "Sections")
			for i, hdr := range headers {
				table.Append([]string{
					args[i],
					hdr.Class().String(),
					fmt.Sprint(hdr.ByteOrder()),
					hdr.Type().String(),
					hdr.Machine().String(),
					fmt.Sprintf("0x%x", hdr.Entry()),
					fmt.Sprintf("%d", hdr.ProgramHeaderCount()),
					fmt.Sprintf("%d", hdr.SectionHeaderCount()),
				})
			}
			table.Render()

			return nil
		},
	}
}
