package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ivlev/pptx2video/internal/scenario"
	"github.com/ivlev/pptx2video/internal/timeline"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline <script>",
	Short: "Show the frame timeline of a document",
	Long: `Lay out a timeline document frame by frame: where each scene starts, how
long it runs and where transitions overlap neighbouring scenes.

With --frame, also show what is on screen at that frame and the state of
its Ken Burns motion or text entrance.

Examples:
  pptx2video timeline assets/script.json
  pptx2video timeline assets/script.json --frame 140
  pptx2video timeline assets/script.json --ffmpeg`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().
		IntP("frame", "f", -1, "Sample the curves at this absolute frame")
	timelineCmd.Flags().
		Bool("ffmpeg", false, "Print an FFmpeg zoompan filter for every Ken Burns scene")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	doc, err := scenario.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	plan := timeline.Schedule(doc)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%d scenes at %g fps: %d frames reported, %d rendered\n\n",
		len(plan.Segments), plan.FPS, plan.TotalFrames, plan.Length)
	printSegments(out, plan)

	if withFilters, _ := cmd.Flags().GetBool("ffmpeg"); withFilters {
		filters := plan.Filters(doc.Width, doc.Height)
		fmt.Fprintln(out)
		for i := range plan.Segments {
			if f, ok := filters[i]; ok {
				fmt.Fprintf(out, "%d: %s\n", i, f)
			}
		}
	}

	if frame, _ := cmd.Flags().GetInt("frame"); cmd.Flags().Changed("frame") {
		return printFrame(out, plan, frame)
	}
	return nil
}

func printSegments(out io.Writer, plan *timeline.Plan) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tSTART\tFRAMES\tTRANSITION")
	for i, seg := range plan.Segments {
		transition := "-"
		for _, tr := range plan.Transitions {
			if tr.From == i {
				transition = fmt.Sprintf("%s %d@%d", tr.Kind, tr.Frames, tr.Start)
				if tr.Direction != "" {
					transition += " " + string(tr.Direction)
				}
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", i, seg.Scene.Type(), seg.Start, seg.Window, transition)
	}
	tw.Flush()
}

func printFrame(out io.Writer, plan *timeline.Plan, frame int) error {
	f, ok := plan.At(frame)
	if !ok {
		return fmt.Errorf("frame %d is outside the timeline [0, %d)", frame, max(plan.Length, plan.TotalFrames))
	}

	fmt.Fprintf(out, "\nframe %d: scene %d, local frame %d\n", frame, f.Scene, f.Local)
	printCurves(out, plan.Segments[f.Scene].Scene, f.Local, plan.FPS)

	if f.Transition != nil {
		fmt.Fprintf(out, "%s %.0f%% into scene %d, local frame %d\n",
			f.Transition.Kind, f.Progress*100, f.Incoming, f.InLocal)
		printCurves(out, plan.Segments[f.Incoming].Scene, f.InLocal, plan.FPS)
	}
	return nil
}

func printCurves(out io.Writer, s scenario.Scene, local int, fps float64) {
	c := timeline.CurvesAt(s, local, fps)
	if c.Motion != nil {
		fmt.Fprintf(out, "  zoom %.4f  panX %.3f%%  panY %.3f%%\n", c.Motion.Zoom, c.Motion.PanX, c.Motion.PanY)
	}
	if c.Entrance != nil {
		fmt.Fprintf(out, "  opacity %.3f  translateY %.2fpx  scale %.3f\n",
			c.Entrance.Opacity, c.Entrance.TranslateY, c.Entrance.Scale)
	}
}
