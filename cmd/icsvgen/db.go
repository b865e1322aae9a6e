package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"icsvgen"
	"icsvgen/reader"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Profile a SQL query result and write iCSV + schema",
	Long: `Runs a query against postgres, mysql or sqlite and profiles the
result set. NULL values are treated as missing. Output paths are
required since there is no input file to derive them from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		driver, _ := flags.GetString("driver")
		dsn, _ := flags.GetString("dsn")
		query, _ := flags.GetString("query")

		if dsn == "" || query == "" {
			return fmt.Errorf("both --dsn and --query are required")
		}

		db, err := sql.Open(driver, dsn)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		nodata := viper.GetString("nodata")

		rs, err := reader.QueryRows(cmd.Context(), db, query, nodata)
		if err != nil {
			return err
		}

		outPath, _ := flags.GetString("out")
		schemaPath, _ := flags.GetString("schema-out")

		var summaryOut io.Writer
		if summary, _ := flags.GetBool("summary"); summary {
			summaryOut = os.Stdout
		}

		return icsvgen.RunRowSet(rs, ',', &icsvgen.Request{
			OutPath:            outPath,
			SchemaPath:         schemaPath,
			Nodata:             nodata,
			ApplicationProfile: viper.GetString("application_profile"),
			Summary:            summaryOut,
		})
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)

	dbCmd.Flags().String("driver", "postgres", "database driver (postgres, mysql, sqlite)")
	dbCmd.Flags().String("dsn", "", "database source name")
	dbCmd.Flags().String("query", "", "query whose result set is profiled")
	dbCmd.Flags().String("out", "", "output iCSV path (required)")
	dbCmd.Flags().String("schema-out", "", "output schema path (required)")
	dbCmd.Flags().Bool("summary", false, "print a profile summary table")
}
