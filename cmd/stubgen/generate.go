package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pacer/stubgen/internal/stub"
	"github.com/pacer/stubgen/internal/stub/language"
)

var (
	generateOutput string
	generateStdout bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <language> [file...]",
	Short: "Render stub definitions into target-language source",
	Long: `Renders one or more stub definition files for the given language and
writes each result next to its input, swapping the extension for the
language's. Without files the definition is read from standard input and
the generated source goes to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the result to this path (single input only)")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print generated source instead of writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	langName := args[0]
	files := args[1:]

	if len(files) == 0 {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		output, err := stub.Generate(source, langName)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), output)

		return nil
	}

	if generateOutput != "" && len(files) > 1 {
		return errors.New("--output only works with a single input file")
	}

	lang, err := language.Find(langName)
	if err != nil {
		return err
	}

	sources := make(map[string][]byte, len(files))
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		sources[file] = source
	}

	outputs, errs := stub.GenerateFiles(sources, langName)

	for _, err := range errs {
		logger.Error("generation failed", zap.Error(err))
	}

	for _, file := range files {
		output, ok := outputs[file]
		if !ok {
			continue
		}

		if generateStdout {
			fmt.Fprint(cmd.OutOrStdout(), output)
			continue
		}

		target := stub.OutputFileName(file, lang)
		if generateOutput != "" {
			target = generateOutput
		}

		if err := os.WriteFile(target, []byte(output), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		logger.Info("stub generated",
			zap.String("input", file),
			zap.String("output", target),
			zap.String("language", lang.Name),
		)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d definitions failed", len(errs), len(files))
	}

	return nil
}
