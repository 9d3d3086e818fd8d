package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

type symbolRow struct {
	name  string
	value uint64
	size  uint64
	bind  string
	typ   string
	vis   string
	shndx uint16
}

func newSymbolsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>...",
		Short: "List symbol table entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perFile, err := collectFiles(args, func(_ string, f *elf.File) ([]symbolRow, error) {
				var rows []symbolRow

				it := f.Symbols()
				for {
					sym, err := it.Next()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						return nil, err
					}

					// A symbol whose name offset resolves in no string
					// table lists with a blank name.
					name, err := f.SymbolName(sym)
					if err != nil && !errors.Is(err, elf.ErrSymbolNameNotFound) {
						return nil, err
					}

					rows = append(rows, symbolRow{
						name:  name,
						value: sym.Value(),
						size:  sym.Size(),
						bind:  sym.Bind().String(),
						typ:   sym.Type().String(),
						vis:   sym.Visibility().String(),
						shndx: sym.SectionIndex(),
					})
				}

				return rows, nil
			})
			if err != nil {
				return err
			}

			table := opts.newTable(cmd, "File", "Name", "Value", "Size", "Bind", "Type", "Vis", "Shndx")
			for i, rows := range perFile {
				for _, row := range rows {
					table.Append([]string{
						args[i],
						opts.clipName(row.name),
						fmt.Sprintf("0x%x", row.value),
						fmt.Sprintf("%d", row.size),
						row.bind,
						row.typ,
						row.vis,
						fmt.Sprintf("%d", row.shndx),
					})
				}
			}
			table.Render()

			return nil
		},
	}
}
