package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"icsvgen"
)

var makeCmd = &cobra.Command{
	Use:     "make [input]",
	Aliases: []string{"profile"},
	Short:   "Profile a delimited or spreadsheet file and write iCSV + schema",
	Long: `Reads the input (CSV/TSV, optionally gzip or bzip2 compressed, an
xlsx workbook, or stdin when the input is - ), infers per-column types
and statistics, and writes <input>.icsv and <input>_schema.json unless
output paths are given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		flags := cmd.Flags()

		delimiter, _ := flags.GetString("delimiter")
		if delimiter == `\t` {
			delimiter = "\t"
		}

		noHeader, _ := flags.GetBool("noheader")
		outPath, _ := flags.GetString("out")
		schemaPath, _ := flags.GetString("schema-out")
		compression, _ := flags.GetString("compression")
		sheet, _ := flags.GetString("sheet")
		headerRow, _ := flags.GetInt("header-row")
		summary, _ := flags.GetBool("summary")

		var summaryOut io.Writer
		if summary {
			summaryOut = os.Stdout
		}

		return icsvgen.Run(&icsvgen.Request{
			Path:               path,
			OutPath:            outPath,
			SchemaPath:         schemaPath,
			Delimiter:          delimiter,
			Header:             !noHeader,
			Compression:        compression,
			Sheet:              sheet,
			HeaderRow:          headerRow,
			Nodata:             viper.GetString("nodata"),
			ApplicationProfile: viper.GetString("application_profile"),
			Summary:            summaryOut,
		})
	},
}

func init() {
	rootCmd.AddCommand(makeCmd)

	makeCmd.Flags().StringP("delimiter", "d", "", `force the input delimiter (\t for tab)`)
	makeCmd.Flags().Bool("noheader", false, "no header row present")
	makeCmd.Flags().String("out", "", "output iCSV path")
	makeCmd.Flags().String("schema-out", "", "output schema path")
	makeCmd.Flags().String("compression", "", "input compression (gzip, bzip2)")
	makeCmd.Flags().String("sheet", "", "workbook sheet name or 0-based index")
	makeCmd.Flags().Int("header-row", 0, "1-based header row for workbook sheets")
	makeCmd.Flags().Bool("summary", false, "print a profile summary table")
}
