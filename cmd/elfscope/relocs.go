package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

type relocRow struct {
	section string
	offset  uint64
	typ     string
	symbol  string
	addend  string
}

func newRelocsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "relocs <file>...",
		Short: "List relocation entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perFile, err := collectFiles(args, func(_ string, f *elf.File) ([]relocRow, error) {
				var rows []relocRow

				it := f.Relocations()
				for {
					r, err := it.Next()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						return nil, err
					}

					row := relocRow{offset: r.Offset()}

					sec, err := f.SectionByIndex(it.SectionIndex())
					if err != nil {
						return nil, err
					}
					if name, err := f.SectionName(sec); err == nil {
						row.section = name
					}

					// Machines without a catalog still list, with the raw
					// numeric type.
					if typ, err := r.Type(f.Machine()); err == nil {
						row.typ = typ.String()
					} else {
						row.typ = fmt.Sprintf("%d", r.TypeRaw())
					}

					if sym, err := f.LinkedSymbol(r, it.SectionIndex()); err == nil {
						if name, err := f.SymbolName(sym); err == nil {
							row.symbol = name
						}
					}

					if addend, ok := r.Addend(); ok {
						row.addend = fmt.Sprintf("%d", addend)
					}

					rows = append(rows, row)
				}

				return rows, nil
			})
			if err != nil {
				return err
			}

			table := opts.newTable(cmd, "File", "Section", "Offset", "Type", "Symbol", "Addend")
			for i, rows := range perFile {
				for _, row := range rows {
					table.Append([]string{
						args[i],
						row.section,
						fmt.Sprintf("0x%x", row.offset),
						row.typ,
						opts.clipName(row.symbol),
						row.addend,
					})
				}
			}
			table.Render()

			return nil
		},
	}
}
