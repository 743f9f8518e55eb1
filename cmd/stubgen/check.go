package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pacer/stubgen/internal/stub"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate stub definitions without generating code",
	Long: `Parses the given stub definitions and reports the first problem in each.
Without files the definition is read from standard input.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		if _, err := stub.Check(source); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "OK")

		return nil
	}

	failed := 0

	for _, file := range args {
		source, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		if _, err := stub.Check(source); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", file, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", file)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d definitions failed to parse", failed, len(args))
	}

	return nil
}
