package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/particlestudio/internal/canvas"
	"github.com/decker502/particlestudio/internal/particle"
)

// newConvertCmd creates the convert command: import a config file and
// re-export it with normalized formatting, optionally recentering the layout
// onto a different canvas size on the way through.
func newConvertCmd() *cobra.Command {
	var (
		output    string
		oldWidth  float64
		oldHeight float64
		newWidth  float64
		newHeight float64
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Normalize a particle config file",
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

			cfg := res.Config
			if newWidth != 0 || newHeight != 0 {
				cfg.Emitters = canvas.Recenter(cfg.Emitters, oldWidth, oldHeight, newWidth, newHeight)
				logger.Debug("recentered layout",
					"from", fmt.Sprintf("%gx%g", oldWidth, oldHeight),
					"to", fmt.Sprintf("%gx%g", newWidth, newHeight))
			}

			text, err := particle.ToText(cfg)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			logger.Info("wrote normalized config", "path", output,
				"emitters", len(cfg.Emitters), "dropped", len(res.Rejected))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default stdout)")
	cmd.Flags().Float64Var(&oldWidth, "old-width", 800, "canvas width the config was authored for")
	cmd.Flags().Float64Var(&oldHeight, "old-height", 600, "canvas height the config was authored for")
	cmd.Flags().Float64Var(&newWidth, "new-width", 0, "recenter onto this canvas width")
	cmd.Flags().Float64Var(&newHeight, "new-height", 0, "recenter onto this canvas height")
	return cmd
}
