package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

type dynamicRow struct {
	tag   string
	value uint64
	name  string
}

func newDynamicCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dynamic <file>...",
		Short: "List dynamic section entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perFile, err := collectFiles(args, func(_ string, f *elf.File) ([]dynamicRow, error) {
				var rows []dynamicRow

				it := f.Dynamics()
				for {
					d, err := it.Next()
					if errors.Is(err, io.EOF) {
						break
					}
					if err != nil {
						return nil, err
					}

					name, _, err := f.DynString(d)
					if err != nil {
						return nil, err
					}

					rows = append(rows, dynamicRow{
						tag:   d.Tag().String(),
						value: d.Value(),
						name:  name,
					})
				}

				return rows, nil
			})
			if err != nil {
				return err
			}

			table := opts.newTable(cmd, "File", "Tag", "Value", "Name")
			for i, rows := range perFile {
				for _, row := range rows {
					table.Append([]string{
						args[i],
						row.tag,
						fmt.Sprintf("0x%x", row.value),
						opts.clipName(row.name),
					})
				}
			}
			table.Render()

			return nil
		},
	}
}
