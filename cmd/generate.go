package cmd

import (
	"github.com/itsmostafa/papersmith/internal/codegen"
	"github.com/itsmostafa/papersmith/internal/config"
	"github.com/itsmostafa/papersmith/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateLanguage string
var generateModel string
var generateOutputDir string

var generateCmd = &cobra.Command{
	Use:   "generate <paper.pdf|paper.txt>",
	Short: "Analyze a paper and generate an implementation",
	Long: `Generate runs the full analysis, builds a prompt from the strongest
algorithm candidates, asks the configured model for an implementation, and
writes the analysis JSON plus the generated code to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if generateLanguage != "" {
			cfg.Language = generateLanguage
		}
		if generateModel != "" {
			cfg.Model = generateModel
		}
		if generateOutputDir != "" {
			cfg.OutputDir = generateOutputDir
		}

		provider, err := codegen.NewOpenAIProvider(cfg.Model)
		if err != nil {
			return err
		}

		return pipeline.Run(cmd.Context(), pipeline.Config{
			PaperPath:        args[0],
			Language:         cfg.Language,
			OutputDir:        cfg.OutputDir,
			LayoutExtraction: cfg.LayoutExtraction,
			Generate:         true,
			Provider:         provider,
			Output:           cmd.OutOrStdout(),
		})
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "", "Target implementation language (default from config)")
	generateCmd.Flags().StringVarP(&generateModel, "model", "m", "", "Code-generation model (default from config)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output directory for run artifacts (default from config)")
	rootCmd.AddCommand(generateCmd)
}
