package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/particlestudio/internal/particle"
)

// newValidateCmd creates the validate command: parse a config file, run the
// structural validator and list every defect found.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a particle config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read config file %s: %w", args[0], err)
			}

			res, err := particle.Import(string(data))
			if err != nil {
				return err
			}
			for _, rej := range res.Rejected {
				logger.Warn("dropped malformed emitter record",
					"index", rej.Index, "reason", rej.Reason)
			}

			result := particle.Validate(res.Config)
			if result.Valid {
				logger.Info("config is valid",
					"emitters", len(res.Config.Emitters),
					"dropped", len(res.Rejected))
				return nil
			}
			for _, e := range result.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return fmt.Errorf("%d validation error(s)", len(result.Errors))
		},
	}
}
