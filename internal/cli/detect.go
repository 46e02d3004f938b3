package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decker502/particlestudio/internal/sequence"
)

// newDetectCmd creates the detect command: group the given files into a
// numbered animation frame sequence plus leftover individual files, the same
// way the editor treats an upload.
func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Detect an animation frame sequence among files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			files := make([]sequence.File, 0, len(args))
			for _, arg := range args {
				f := sequence.File{Name: filepath.Base(arg)}
				if fi, err := os.Stat(arg); err == nil {
					f.Size = fi.Size()
				}
				files = append(files, f)
			}

			seqs, individual := sequence.AutoDetect(files)
			if len(seqs) == 0 {
				logger.Info("no sequence detected", "files", len(files))
				return nil
			}
			for i := range seqs {
				info := &seqs[i]
				fmt.Fprintf(out, "sequence: %s\n", info.Pattern)
				fmt.Fprintf(out, "  frames %d-%d, padding %d, %d files\n",
					info.StartFrame, info.EndFrame, info.Padding, len(info.Files))
				v := sequence.ValidateSequence(info)
				for _, warning := range v.Warnings {
					logger.Warn(warning, "sequence", info.BaseName)
				}
				if !v.Valid {
					logger.Error("sequence is incomplete", "sequence", info.BaseName)
				}
			}
			for _, f := range individual {
				fmt.Fprintf(out, "individual: %s\n", f.Name)
			}
			return nil
		},
	}
}
