package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elena-krismer/nightingale/pkg/errors"
	"github.com/elena-krismer/nightingale/pkg/render/raster"
	"github.com/elena-krismer/nightingale/pkg/render/svg"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	fetchOpts

	output string  // output file path; derived from the accession if empty
	format string  // "svg" or "png"; derived from the output extension if empty
	width  float64 // snapshot width in pixels; config default if zero
	start  float64 // visible range start; full sequence if zero
	end    float64 // visible range end
}

// newRenderCmd creates the render command for writing snapshot images.
// It renders an accession's tracks at a chosen visible range to SVG or PNG.
func newRenderCmd(configPath *string) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <accession>",
		Short: "Render a protein view to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runRender(cmd, args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <accession>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "snapshot width in pixels (default from config)")
	cmd.Flags().Float64Var(&opts.start, "start", 0, "visible range start (default full sequence)")
	cmd.Flags().Float64Var(&opts.end, "end", 0, "visible range end")
	cmd.Flags().StringVar(&opts.contactsPath, "contacts", "", "contact map file for the links track")
	cmd.Flags().BoolVar(&opts.noVariants, "no-variants", false, "skip the variation track")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")

	return cmd
}

func runRender(cmd *cobra.Command, accession string, cfg *Config, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format, output, err := resolveOutput(accession, opts.format, opts.output)
	if err != nil {
		return err
	}

	client, err := newUniProtClient(cfg)
	if err != nil {
		return err
	}
	vd, err := fetchViewData(ctx, client, accession, opts.fetchOpts)
	if err != nil {
		return err
	}

	width := opts.width
	if width <= 0 {
		width = cfg.Width
	}
	engine := viewport.New(viewport.Dimensions{
		Width:       width,
		MarginLeft:  cfg.MarginLeft,
		MarginRight: cfg.MarginRight,
	}, vd.entry.Length)

	if opts.start != 0 || opts.end != 0 {
		if err := engine.SetFromVisibleRange(opts.start, opts.end); err != nil {
			return err
		}
	}
	v := engine.VisibleRange()
	logger.Debug("rendering", "accession", vd.entry.Accession,
		"start", v.Start, "end", v.End, "width", width, "format", format)

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	switch format {
	case formatPNG:
		err = raster.Render(out, engine, vd.tracks, width)
	default:
		err = svg.Render(out, engine, vd.tracks, width)
	}
	if err != nil {
		return err
	}

	printSuccess("Rendered %s at %.0f:%.0f", vd.entry.Accession, v.Start, v.End)
	printFile(output)
	printNextStep("Browse interactively", "nightingale view "+vd.entry.Accession)
	return nil
}

// resolveOutput settles the format/output pair. An explicit format wins;
// otherwise the output extension decides; otherwise SVG.
func resolveOutput(accession, format, output string) (string, string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".png":
			format = formatPNG
		default:
			format = formatSVG
		}
	}
	if format != formatSVG && format != formatPNG {
		return "", "", errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be svg or png)", format)
	}
	if output == "" {
		output = strings.ToUpper(accession) + "." + format
	}
	return format, output, nil
}
