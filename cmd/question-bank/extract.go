// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/question-bank/internal/document"
	"github.com/pdiddy/question-bank/internal/extract"
	"github.com/pdiddy/question-bank/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <document>",
	Short: "Show the questions extracted from one document",
	Long: `Extract runs the question classifier over a single document and prints
the result without writing a bank file. Unlike build, a document that cannot
be read is an error here. Use it to check how numbered paragraphs are
classified before building.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	ctx := context.Background()

	reader, err := document.NewReader(ctx, types.DocumentBackend(backend))
	if err != nil {
		return err
	}
	text, err := reader.Read(ctx, args[0])
	if err != nil {
		return err
	}
	questions := extract.Extract(text)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	}

	if len(questions) == 0 {
		fmt.Println("No questions found.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%-4s  %-8s  %-9s  %s\n", "ID", "Dim", "Type", "Content")
	for _, q := range questions {
		fmt.Fprintf(os.Stdout, "%-4d  %-8s  %-9s  %s\n", q.QuestionID, q.Dimension, q.OptionType, q.QuestionContent)
	}
	fmt.Fprintf(os.Stdout, "\n%d questions\n", len(questions))
	return nil
}

func init() {
	extractCmd.Flags().String("backend", string(types.BackendAuto), "document reader: auto, ooxml, text, or markitdown")
	extractCmd.Flags().Bool("json", false, "output questions as JSON")

	rootCmd.AddCommand(extractCmd)
}
