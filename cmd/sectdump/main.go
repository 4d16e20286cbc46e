package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lunixbochs/sectdump"
	"github.com/lunixbochs/sectdump/dump"
	"github.com/lunixbochs/sectdump/models"
)

var cfg models.Config

var rootCmd = &cobra.Command{
	Use:   "sectdump",
	Short: "Locate Swift reflection sections in a binary",
	Long: `sectdump finds the Swift reflection metadata sections of a binary
(flat Mach-O, fat Mach-O, or ELF) and prints where each one lives.

Example: sectdump --binary-filename ./a.out --arch x86_64`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sectdump.Run(cfg, dump.New(os.Stdout))
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Binary, "binary-filename", "", "filename of the binary file")
	rootCmd.Flags().StringVar(&cfg.Arch, "arch", "", "architecture to inspect in the binary")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.MarkFlagRequired("binary-filename")
	rootCmd.MarkFlagRequired("arch")
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// printError prints an error, and with -v a compact stacktrace if one is
// attached.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	st, ok := err.(stackTracer)
	if !ok || !cfg.Verbose {
		return
	}
	for _, f := range st.StackTrace() {
		method := fmt.Sprintf("%n", f)
		fmt.Fprintf(os.Stderr, "  %s:%d %s()\n", fmt.Sprintf("%s", f), f, method)
		if strings.HasPrefix(method, "main.") {
			break
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
