// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/question-bank/internal/bank"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [bank-file]",
	Short: "Count a bank's questions by dimension and option type",
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

		summaries := bank.Summarize(qb)
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}
		bank.PrintSummary(os.Stdout, qb.Version, summaries)
		return nil
	},
}

func init() {
	summaryCmd.Flags().Bool("json", false, "output counts as JSON")

	rootCmd.AddCommand(summaryCmd)
}
