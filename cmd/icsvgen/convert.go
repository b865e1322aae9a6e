package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"icsvgen/reader"
)

var convertCmd = &cobra.Command{
	Use:   "convert workbook.xlsx",
	Short: "Convert workbook sheets to CSV files, one per sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		flags := cmd.Flags()

		outdir, _ := flags.GetString("outdir")
		if outdir == "" {
			outdir = filepath.Dir(path)
		}

		var sheets []string
		if s, _ := flags.GetString("sheets"); s != "" {
			for _, part := range strings.Split(s, ",") {
				if part = strings.TrimSpace(part); part != "" {
					sheets = append(sheets, part)
				}
			}
		}

		headerRow, _ := flags.GetInt("header-row")

		written, err := reader.ConvertSheets(path, outdir, sheets, headerRow)
		if err != nil {
			return err
		}

		for _, w := range written {
			slog.Info("wrote CSV", "path", w)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("outdir", "", "directory for output CSV files (default: input directory)")
	convertCmd.Flags().String("sheets", "", "comma-separated sheet names or 0-based indexes (default: all)")
	convertCmd.Flags().Int("header-row", 1, "1-based header row, 0 for none")
}
