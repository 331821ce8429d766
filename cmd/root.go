package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/papersmith/internal/version"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "papersmith",
	Short: "Turn research papers into working code",
	Long: `Papersmith ingests a research paper (PDF or plain text), runs a heuristic
analysis over it - sections, candidate algorithm blocks, keywords, topical
classification - and can hand the result to a code-generating model to
produce a runnable implementation of the paper's algorithm.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("papersmith %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./config.yaml or ~/.papersmith/config.yaml)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
