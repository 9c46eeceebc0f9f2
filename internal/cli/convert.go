package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/pptx2video/internal/config"
	"github.com/ivlev/pptx2video/internal/engine"
	"github.com/ivlev/pptx2video/internal/pptx"
	"github.com/ivlev/pptx2video/internal/source"
	"github.com/ivlev/pptx2video/internal/system"
)

var convertCmd = &cobra.Command{
	Use:   "convert [deck] [script]",
	Short: "Convert a slide deck into a timeline document",
	Long: `Convert a .pptx deck, a PDF or a folder of images into a timeline document.

Each slide becomes one scene: slides with a picture become image scenes
captioned with the slide text, the rest become text cards. Pictures are
copied into the image directory. The document is written as JSON, or YAML
when the script path ends in .yaml or .yml.

Without a deck argument the newest .pptx or .pdf in the input directory is
used. Without a script argument the configured scriptPath is used.

Examples:
  pptx2video convert
  pptx2video convert talk.pptx
  pptx2video convert talk.pptx public/script.json --image-dir public
  pptx2video convert slides.pdf --config video.yaml --cinematic=false`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	defaults := config.Default()

	convertCmd.Flags().
		StringP("config", "c", "", "YAML config file (flags override its values)")
	convertCmd.Flags().
		String("input-dir", "input", "Directory searched for the newest deck when none is given")
	convertCmd.Flags().
		Float64("fps", defaults.FPS, "Frames per second")
	convertCmd.Flags().
		Float64P("slide-duration", "d", defaults.SlideDuration, "Seconds per slide")
	convertCmd.Flags().
		StringP("output-video", "o", defaults.OutputVideo, "Video path recorded in the document")
	convertCmd.Flags().
		Bool("cinematic", defaults.Cinematic, "Add Ken Burns motion, text entrances and fades")
	convertCmd.Flags().
		String("image-dir", defaults.ImageDir, "Directory the slide pictures are written to")
	convertCmd.Flags().
		String("ref-style", defaults.RefStyle, "How scenes reference pictures (name, path)")
	convertCmd.Flags().
		IntP("workers", "w", defaults.Workers, "Slides processed in parallel")
	convertCmd.Flags().
		Int("dpi", defaults.DPI, "Render resolution for PDF pages")
	convertCmd.Flags().
		Bool("stats", false, "Log a performance report")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var deckPath string
	if len(args) > 0 {
		deckPath = args[0]
	} else {
		inputDir, _ := cmd.Flags().GetString("input-dir")
		deckPath, err = system.FindLatestDeck(inputDir)
		if err != nil {
			return fmt.Errorf("%w (pass a deck path or put one in %s/)", err, inputDir)
		}
		logger.Infow("Selected newest deck", "deck", deckPath)
	}
	if len(args) > 1 {
		cfg.ScriptPath = args[1]
	}

	deck, err := source.Open(deckPath, cfg.DPI)
	if err != nil {
		if errors.Is(err, pptx.ErrNoSlidesFound) {
			return fmt.Errorf("%s: %w; check that the deck lists its slides in ppt/presentation.xml", deckPath, err)
		}
		return fmt.Errorf("open %s: %w", deckPath, err)
	}
	defer deck.Close()

	res, err := engine.NewProject(cfg, deck, logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d scenes, %d frames at %g fps (%.1fs)\n",
		res.ScriptPath, len(res.Document.Scenes), res.TotalFrames, res.Document.FPS, res.Document.TotalSeconds())
	return nil
}

// loadConfig starts from --config (or the defaults) and applies every flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS, _ = flags.GetFloat64("fps")
	}
	if flags.Changed("slide-duration") {
		cfg.SlideDuration, _ = flags.GetFloat64("slide-duration")
	}
	if flags.Changed("output-video") {
		cfg.OutputVideo, _ = flags.GetString("output-video")
	}
	if flags.Changed("cinematic") {
		cfg.Cinematic, _ = flags.GetBool("cinematic")
	}
	if flags.Changed("image-dir") {
		cfg.ImageDir, _ = flags.GetString("image-dir")
	}
	if flags.Changed("ref-style") {
		cfg.RefStyle, _ = flags.GetString("ref-style")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("dpi") {
		cfg.DPI, _ = flags.GetInt("dpi")
	}
	if flags.Changed("stats") {
		cfg.ShowStats, _ = flags.GetBool("stats")
	}
	cfg.BuildVersion = Version

	return cfg, cfg.Validate()
}
