package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pacer/stubgen/internal/stub/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the bundled target languages",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	names, err := language.Names()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEXT\tCASING\tALIASES")

	for _, name := range names {
		lang, err := language.Find(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			lang.Name,
			lang.SourceFileExt,
			lang.VariableFormat,
			strings.Join(lang.Aliases, ", "),
		)
	}

	return w.Flush()
}
