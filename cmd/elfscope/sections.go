package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

type sectionRow struct {
	index int
	name  string
	typ   string
	flags string
	addr  uint64
	off   uint64
	size  uint64
	ent   uint64
}

func newSectionsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>...",
		Short: "List section headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perFile, err := collectFiles(args, func(_ string, f *elf.File) ([]sectionRow, error) {
				var rows []sectionRow

				it := f.Sections()
				for {
					sec, err := it.Next()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						return nil, err
					}

					// Files without a .shstrtab still list, with blank names.
					name, err := f.SectionName(sec)
					if err != nil && !errors.Is(err, elf.ErrNoSectionStringTable) {
						return nil, err
					}

					rows = append(rows, sectionRow{
						index: sec.Index(),
						name:  name,
						typ:   sec.Type().String(),
						flags: sec.Flags().String(),
						addr:  sec.Addr(),
						off:   sec.Offset(),
						size:  sec.Size(),
						ent:   sec.EntrySize(),
					})
				}

				return rows, nil
			})
			if err != nil {
				return err
			}

			table := opts.newTable(cmd, "File", "Idx", "Name", "Type", "Flags", "Addr", "Offset", "Size", "EntSize")
			for i, rows := range perFile {
				for _, row := range rows {
					table.Append([]string{
						args[i],
						fmt.Sprintf("%d", row.index),
						opts.clipName(row.name),
						row.typ,
						row.flags,
						fmt.Sprintf("0x%x", row.addr),
						fmt.Sprintf("0x%x", row.off),
						fmt.Sprintf("0x%x", row.size),
						fmt.Sprintf("%d", row.ent),
					})
				}
			}
			table.Render()

			return nil
		},
	}
}
