package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"c2e-dev/c2e/pkg/codec"
	"c2e-dev/c2e/pkg/codec/eval"
	"c2e-dev/c2e/pkg/codec/printer"
)

var showFlags struct {
	file  string
	probe string
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a compiled codec",
	Long: `Display the compiled rule chain of a codec document.

The chain is printed as a colored decision tree, one branch per rule.
With --probe, each character of the probe string is matched against the
chain and the selected emitter is shown.

Examples:
  # Inspect the compiled chain
  c2e show --file codecs/html.c2e

  # See which emitter handles each character
  c2e show --file codecs/html.c2e --probe '<&"x'`,
	RunE: showCodec,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showFlags.file, "file", "f", "", "codec document to display (required)")
	showCmd.Flags().StringVarP(&showFlags.probe, "probe", "p", "", "characters to match against the chain")
	showCmd.MarkFlagRequired("file")
}

func showCodec(cmd *cobra.Command, args []string) error {
	c, err := codec.ParseAndValidateFile(showFlags.file)
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	p := printer.New()

	fmt.Printf("%s %s\n", heading("target:"), c.Target())
	fmt.Printf("%s %v\n\n", heading("emitters:"), c.Emitters())
	fmt.Println(p.Print(c.Root()))

	for _, name := range c.Emitters() {
		if e := c.UserEmitter(name); e != nil {
			fmt.Printf("\n%s %s\n%s\n", heading("emitter:"), name, p.Print(e))
		}
	}

	if showFlags.probe != "" {
		fmt.Printf("\n%s\n", heading("probe:"))
		for _, r := range showFlags.probe {
			selected, err := eval.Select(c.Root(), r)
			if err != nil {
				return err
			}
			fmt.Printf("  %-8s %s\n", fmt.Sprintf("U+%04X", r), p.Print(selected))
		}
	}
	return nil
}
