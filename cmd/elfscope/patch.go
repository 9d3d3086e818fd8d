package main

import (
	"fmt"
	"os"

	"github.com/elfscope/elfscope/elf"
	"github.com/spf13/cobra"
)

func newPatchCommand(opts *rootOptions) *cobra.Command {
	sectionName := ""
	dataString := ""
	dataFile := ""
	outputPath := ""

	cmd := &cobra.Command{
		Use:   "patch <file>",
		Short: "Overwrite part of a section and write the result to a new file",
		Long: "Patch overwrites the start of a section with the given payload and " +
			"persists the result to a new file. The payload must be strictly " +
			"smaller than the section; the input file is never modified.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var payload []byte
			switch {
			case dataFile != "":
				content, err := os.ReadFile(dataFile)
				if err != nil {
					return fmt.Errorf("failed to read payload file: %w", err)
				}
				payload = content
			case dataString != "":
				payload = []byte(dataString)
			default:
				return fmt.Errorf("one of --data or --data-file is required")
			}

			f, err := elf.Open(args[0], elf.ReadWrite)
			if err != nil {
				return fmt.Errorf("failed to open '%s': %w", args[0], err)
			}
			defer f.Close()

			sec, err := f.SectionByName(sectionName)
			if err != nil {
				return fmt.Errorf("failed to find section '%s': %w", sectionName, err)
			}

			if err := f.ModifySectionData(sec, payload); err != nil {
				return fmt.Errorf("failed to patch section '%s': %w", sectionName, err)
			}

			if err := f.Persist(outputPath); err != nil {
				return fmt.Errorf("failed to persist patched file: %w", err)
			}

			opts.logger.Info("wrote patched file",
				"path", outputPath,
				"section", sectionName,
				"bytes", len(payload),
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&sectionName, "section", "s", "", "Name of the section to patch")
	cmd.Flags().StringVar(&dataString, "data", "", "Payload bytes given inline")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Path to a file containing the payload")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "patched.elf", "Path to the output file")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}
