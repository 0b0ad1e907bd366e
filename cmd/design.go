package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexiusacademia/rcbd/internal/config"
	"github.com/alexiusacademia/rcbd/internal/pipeline"
)

var (
	designInput  string
	designOutput string
	designLogLvl string
	designPretty bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Run the batch reinforcement design for a job file",
	Long: `Run the full design pipeline for every beam in the job file:
flexural design, bar selection and arrangement, capacity and strain
verification, seismic ductility minimums, then shear and torsion design.

Design failures (over-reinforced sections, infeasible bar layouts) are
recorded per section in the output and counted in the metadata; they do
not abort the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(designLogLvl)
		if err != nil {
			return err
		}
		defer logger.Sync()

		job, err := config.Load(designInput)
		if err != nil {
			return err
		}

		doc, err := pipeline.Run(job, logger)
		if err != nil {
			return err
		}

		if err := pipeline.WriteJSON(doc, designOutput, designPretty); err != nil {
			return err
		}

		logger.Info("results written",
			zap.String("path", designOutput),
			zap.Int("failures", doc.Metadata.FailureCount))
		return nil
	},
}

// newLogger builds the run logger at the requested level. Console encoding,
// errors and above to stderr through the default zap production core.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func init() {
	designCmd.Flags().StringVarP(&designInput, "input", "i", "", "job file (JSON or YAML)")
	designCmd.Flags().StringVarP(&designOutput, "output", "o", "design_results.json", "output file")
	designCmd.Flags().StringVar(&designLogLvl, "log-level", "info", "log level (debug, info, warn, error)")
	designCmd.Flags().BoolVar(&designPretty, "pretty", false, "indent the output JSON")
	designCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(designCmd)
}
