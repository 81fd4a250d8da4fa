// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/question-bank/internal/bank"
	"github.com/pdiddy/question-bank/internal/document"
	"github.com/pdiddy/question-bank/pkg/types"
)

const (
	defaultSelfDoc  = "给自己测  题库.docx"
	defaultLoverDoc = "为恋人测 题库.docx"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Extract both question banks and write the bank file",
	Long: `Build reads the self-test and lover-test documents, extracts their
numbered questions, and writes the combined bank (questionBank.json by
default). A document that cannot be read is replaced by the built-in
question table and a warning is logged; the build still succeeds.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	ctx := context.Background()

	reader, err := document.NewReader(ctx, cfg.Backend)
	if err != nil {
		return err
	}
	logger.Debug("document backend selected", zap.String("backend", string(cfg.Backend)))

	b := &bank.Builder{Reader: reader, Logger: logger, Out: os.Stdout}
	qb, _, err := b.Build(ctx, cfg)
	if err != nil {
		return err
	}

	if err := bank.Write(cfg.Output, qb, cfg.Format); err != nil {
		return err
	}
	fmt.Printf("question bank saved to %s\n", cfg.Output)
	return nil
}

func buildConfig() types.BuildConfig {
	cfg := types.BuildConfig{
		SelfDoc:  viper.GetString("build.self"),
		LoverDoc: viper.GetString("build.lover"),
		Output:   viper.GetString("build.output"),
		Format:   types.OutputFormat(viper.GetString("build.format")),
		Backend:  types.DocumentBackend(viper.GetString("build.backend")),
	}
	if cfg.Output == "" {
		cfg.Output = bank.DefaultOutput
	}
	return cfg
}

func init() {
	buildCmd.Flags().String("self", defaultSelfDoc, "self-test source document")
	buildCmd.Flags().String("lover", defaultLoverDoc, "lover-test source document")
	buildCmd.Flags().StringP("output", "o", bank.DefaultOutput, "bank file to write")
	buildCmd.Flags().String("format", "", "output format: json or yaml (default: from the output extension)")
	buildCmd.Flags().String("backend", string(types.BackendAuto), "document reader: auto, ooxml, text, or markitdown")
	bindFlags(buildCmd, "build", "self", "lover", "output", "format", "backend")

	rootCmd.AddCommand(buildCmd)
}
