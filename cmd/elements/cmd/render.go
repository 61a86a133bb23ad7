package cmd

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/elements/cmd/elements/internal/config"
	"github.com/go-drift/elements/cmd/elements/internal/gallery"
	"github.com/go-drift/elements/pkg/errors"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/theme"
	"github.com/go-drift/elements/pkg/view"
)

type renderFlags struct {
	output string
	theme  string
	width  int
	height int
	scale  float64
	value  float64
}

func renderCmd(global *globalFlags) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the widget gallery to a PNG file",
		Long: `Render the widget gallery headlessly to a PNG file.

Settings come from the render section of elements.yaml; flags override
them. Fonts listed under render.fonts are registered before drawing;
families without a registered font fall back to a bitmap face.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(global.project)
			if err != nil {
				return err
			}
			applyRenderFlags(cmd, cfg, flags)

			img, err := renderGallery(cfg, flags.value, slog.Default())
			if err != nil {
				return err
			}
			if err := writePNG(cfg.Output, img); err != nil {
				return err
			}
			slog.Info("rendered", "output", cfg.Output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output PNG file")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme file (.yaml, .yml or .toml)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Logical width")
	cmd.Flags().IntVar(&flags.height, "height", 0, "Logical height")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "Pixels per logical unit")
	cmd.Flags().Float64Var(&flags.value, "value", 0.5, "Initial value of the gallery controls")
	return cmd
}

func resolveConfig(project string) (*config.Resolved, error) {
	root := project
	if root == "" {
		var err error
		if root, err = config.FindProjectRoot(); err != nil {
			return nil, &errors.ElementsError{Op: "config.FindProjectRoot", Kind: errors.KindConfig, Err: err}
		}
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, &errors.ElementsError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}
	return cfg, nil
}

func applyRenderFlags(cmd *cobra.Command, cfg *config.Resolved, flags renderFlags) {
	fs := cmd.Flags()
	if fs.Changed("output") {
		cfg.Output = flags.output
	}
	if fs.Changed("theme") {
		cfg.ThemePath = flags.theme
	}
	if fs.Changed("width") {
		cfg.Width = flags.width
	}
	if fs.Changed("height") {
		cfg.Height = flags.height
	}
	if fs.Changed("scale") {
		cfg.Scale = flags.scale
	}
}

// headlessHost is a view host without a window. Repaint requests are
// ignored; the whole view is drawn once.
type headlessHost struct {
	size graphics.Extent
}

func (h *headlessHost) Refresh(graphics.Rect)     {}
func (h *headlessHost) RefreshAll()               {}
func (h *headlessHost) CursorPos() graphics.Point { return graphics.Point{} }
func (h *headlessHost) Size() graphics.Extent     { return h.size }

// renderGallery draws the gallery described by cfg into an image.
func renderGallery(cfg *config.Resolved, value float64, logger *slog.Logger) (*image.RGBA, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Scale <= 0 {
		return nil, &errors.ElementsError{
			Op:   "render",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid render size %dx%d@%v", cfg.Width, cfg.Height, cfg.Scale),
		}
	}

	th := theme.Default()
	if cfg.ThemePath != "" {
		var err error
		if th, err = theme.Load(cfg.ThemePath); err != nil {
			return nil, &errors.ElementsError{Op: "theme.Load", Kind: errors.KindResource, Err: err}
		}
	}

	fonts, err := loadFonts(cfg.Fonts)
	if err != nil {
		return nil, err
	}

	host := &headlessHost{size: graphics.Extent{X: float64(cfg.Width), Y: float64(cfg.Height)}}
	v := view.New(host, view.WithTheme(th), view.WithLogger(logger), view.WithFonts(fonts))
	v.SetContent(gallery.New(v, value).Root)

	w := int(math.Ceil(float64(cfg.Width) * cfg.Scale))
	h := int(math.Ceil(float64(cfg.Height) * cfg.Scale))
	canvas := graphics.NewRasterCanvas(w, h, cfg.Scale, fonts)
	canvas.Clear(cfg.Background)
	if err := drawFrame(v, canvas); err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

// drawFrame draws the whole view. A panic in an element is reported to the
// error handler and returned as an error.
func drawFrame(v *view.View, canvas graphics.Canvas) (err error) {
	defer errors.RecoverWithCallback("render.Draw", func(r any) {
		err = &errors.ElementsError{Op: "render.Draw", Kind: errors.KindPanic, Err: fmt.Errorf("%v", r)}
	})
	v.Draw(canvas, v.Bounds())
	return nil
}

func loadFonts(files map[string]string) (*graphics.FontManager, error) {
	fonts, err := graphics.NewFontManager()
	if err != nil {
		return nil, &errors.ElementsError{Op: "graphics.NewFontManager", Kind: errors.KindInit, Err: err}
	}
	for family, path := range files {
		data, err := os.ReadFile(path)
		if err == nil {
			err = fonts.RegisterFont(family, data)
		}
		if err != nil {
			return nil, &errors.ElementsError{
				Op:   "render.loadFonts",
				Kind: errors.KindResource,
				Err:  fmt.Errorf("font %s: %w", family, err),
			}
		}
	}
	return fonts, nil
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &errors.ElementsError{Op: "render.writePNG", Kind: errors.KindRender, Err: fmt.Errorf("encode %s: %w", path, err)}
	}
	return f.Close()
}
