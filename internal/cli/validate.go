package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/pptx2video/internal/scenario"
	"github.com/ivlev/pptx2video/internal/timeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate <script>",
	Short: "Check a timeline document against the schema",
	Long: `Validate a JSON or YAML timeline document and list every problem found,
one per line, with the path of the offending field.

Examples:
  pptx2video validate assets/script.json
  pptx2video validate scenes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	doc, err := scenario.ReadFile(path)
	var verr *scenario.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			fmt.Fprintf(out, "  %s\n", v)
		}
		return fmt.Errorf("%s: %d violation(s)", path, len(verr.Violations))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Debugw("Document valid", "path", path, "scenes", len(doc.Scenes))
	fmt.Fprintf(out, "%s is valid: %d scenes, %d frames at %g fps\n",
		path, len(doc.Scenes), timeline.TotalFrames(doc), doc.FPS)
	return nil
}
