package cmd

import (
	"github.com/itsmostafa/papersmith/internal/config"
	"github.com/itsmostafa/papersmith/internal/pipeline"
	"github.com/spf13/cobra"
)

var analyzeJSON bool
var analyzeNoLayout bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <paper.pdf|paper.txt>",
	Short: "Analyze a paper and render the result",
	Long: `Analyze extracts the paper's text, detects sections, ranks candidate
algorithm blocks, extracts keywords, and classifies the topic. The result is
rendered to the terminal, or printed as JSON with --json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		return pipeline.Run(cmd.Context(), pipeline.Config{
			PaperPath:        args[0],
			LayoutExtraction: cfg.LayoutExtraction && !analyzeNoLayout,
			JSONOnly:         analyzeJSON,
			Output:           cmd.OutOrStdout(),
		})
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON instead of the rendered report")
	analyzeCmd.Flags().BoolVar(&analyzeNoLayout, "no-layout", false, "Disable layout-preserving PDF extraction")
	rootCmd.AddCommand(analyzeCmd)
}
