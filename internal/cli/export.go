package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/salesreel/internal/dataset"
)

func newExportCmd(g *globals) *cobra.Command {
	var (
		vf     videoFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the records as JSON",
		Long: `Export writes the loaded records in the format the preview page downloads:
two-space indented JSON with keys title, year, naSales, platform, boxArtUrl.`,
		Example: "  salesreel export -o " + dataset.ExportFilename + "\n  salesreel export --provider genai",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(g, &vf)
			if err != nil {
				return err
			}
			records, err := loadRecords(ctx, cfg, logger)
			if err != nil {
				return err
			}
			data, err := dataset.ExportJSON(records)
			if err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			logger.Info("records exported", "records", len(records), "path", output)
			return nil
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", dataset.ExportFilename, `output file, "-" for stdout`)
	return cmd
}
