package cli

import (
	"github.com/spf13/cobra"

	"github.com/thruflo/pipemaze/internal/render"
	"github.com/thruflo/pipemaze/internal/solver"
)

var (
	renderColor      bool
	renderShowOrigin bool
)

var renderCmd = &cobra.Command{
	Use:   "render <grid-file>",
	Short: "Draw the loop with enclosed tiles marked I and the rest O",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderColor, "color", false, "style loop, interior and exterior tiles")
	renderCmd.Flags().BoolVar(&renderShowOrigin, "show-origin", false, "draw the start tile as S")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := solver.SolveFile(commandContext(cmd), args[0], solver.Options{Workers: cfg.Classifier.Workers})
	if err != nil {
		return err
	}

	opts := render.Options{
		Color:      cfg.Render.Color || renderColor,
		ShowOrigin: cfg.Render.ShowOrigin || renderShowOrigin,
	}
	return render.Render(cmd.OutOrStdout(), a.Grid, a.Loop, a.Enclosure, opts)
}
