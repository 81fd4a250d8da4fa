package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/question-bank/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version and the bank format it writes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("question-bank %s (bank format %s)\n", version, types.BankVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
