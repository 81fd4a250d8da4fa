// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/question-bank/internal/bank"
	"github.com/pdiddy/question-bank/internal/store"
	"github.com/pdiddy/question-bank/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Index a question bank in SQLite and query it",
	Long: `Store keeps a question bank in a local SQLite database. Use ingest to
load a bank file, query to look questions up by bank, dimension, option
type, or wording, and export to write the stored bank back out.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest [bank-file]",
	Short: "Load a bank file into the database, replacing its contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := bank.DefaultOutput
		if len(args) > 0 {
			path = args[0]
		}
		qb, err := bank.Load(path)
		if err != nil {
			return err
		}

		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.Ingest(context.Background(), qb, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Printf("\nstored %d questions from %s\n", summary.Total(), path)
		return nil
	},
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Find stored questions by filters and wording",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := queryOptsFromFlags(cmd, args)

		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.Retrieve(context.Background(), opts)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "%-6s  %-4s  %-8s  %-9s  %s\n", "Bank", "ID", "Dim", "Type", "Content")
		for _, r := range results {
			fmt.Fprintf(os.Stdout, "%-6s  %-4d  %-8s  %-9s  %s\n",
				r.Kind, r.QuestionID, r.Dimension, r.OptionType, r.QuestionContent)
		}
		fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
		return nil
	},
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored bank to a bank file",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		s, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer s.Close()

		qb, err := s.LoadBank(context.Background())
		if err != nil {
			return err
		}
		if err := bank.Write(output, qb, types.OutputFormat(format)); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", output)
		return nil
	},
}

// --- shared helpers ---

func storeConfig() types.StoreConfig {
	return types.StoreConfig{
		DBPath:     viper.GetString("store.db"),
		MaxResults: viper.GetInt("store.max-results"),
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	kind, _ := cmd.Flags().GetString("bank")
	dim, _ := cmd.Flags().GetString("dimension")
	optType, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := store.QueryOptions{
		Kind:       types.TestKind(kind),
		Dimension:  types.Dimension(dim),
		OptionType: types.OptionType(optType),
		MaxResults: limit,
	}
	if len(args) > 0 {
		opts.Query = args[0]
	}
	return opts
}

func init() {
	storeCmd.PersistentFlags().String("db", store.DefaultDBPath, "SQLite database file")
	storeCmd.PersistentFlags().Int("max-results", 50, "default maximum number of query results")
	if err := viper.BindPFlag("store.db", storeCmd.PersistentFlags().Lookup("db")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("store.max-results", storeCmd.PersistentFlags().Lookup("max-results")); err != nil {
		panic(err)
	}

	storeQueryCmd.Flags().String("bank", "", "filter by bank: self or lover")
	storeQueryCmd.Flags().String("dimension", "", "filter by dimension (e.g. 控制欲望)")
	storeQueryCmd.Flags().String("type", "", "filter by option type: attitude or frequency")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 uses --max-results)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	storeExportCmd.Flags().StringP("output", "o", bank.DefaultOutput, "bank file to write")
	storeExportCmd.Flags().String("format", "", "output format: json or yaml (default: from the output extension)")

	storeCmd.AddCommand(storeIngestCmd, storeQueryCmd, storeExportCmd)
	rootCmd.AddCommand(storeCmd)
}
