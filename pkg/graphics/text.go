package graphics

import (
	stderrors "errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-drift/elements/pkg/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 14

	// basicFontSize is the native pixel height of the fallback face.
	basicFontSize = 13

	// measureCacheSize bounds the number of cached text measurements.
	measureCacheSize = 2048

	// faceCacheSize bounds the number of sized faces kept alive.
	faceCacheSize = 64
)

// TextAlign combines one horizontal and one vertical alignment flag.
type TextAlign int

const (
	TextAlignLeft   TextAlign = 0
	TextAlignRight  TextAlign = 1
	TextAlignCenter TextAlign = 2

	TextAlignBaseline TextAlign = 0
	TextAlignTop      TextAlign = 4
	TextAlignMiddle   TextAlign = 8
	TextAlignBottom   TextAlign = 12

	TextAlignHorizontalMask TextAlign = 3
	TextAlignVerticalMask   TextAlign = 12
)

// Horizontal returns only the horizontal part of the alignment.
func (a TextAlign) Horizontal() TextAlign { return a & TextAlignHorizontalMask }

// Vertical returns only the vertical part of the alignment.
func (a TextAlign) Vertical() TextAlign { return a & TextAlignVerticalMask }

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// WithSize returns a copy of the TextStyle with the specified font size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.FontSize = size
	return s
}

func (s TextStyle) size() float64 {
	if s.FontSize <= 0 {
		return defaultFontSize
	}
	return s.FontSize
}

// TextMetrics describes the measured extent of a single line of text.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Extent returns the bounding size of the text.
func (m TextMetrics) Extent() Extent {
	return Extent{X: m.Width, Y: m.Ascent + m.Descent}
}

// Baseline returns the baseline origin for text drawn at pos with the given
// alignment.
func (m TextMetrics) Baseline(pos Point, align TextAlign) Point {
	x := pos.X
	switch align.Horizontal() {
	case TextAlignRight:
		x -= m.Width
	case TextAlignCenter:
		x -= m.Width / 2
	}
	y := pos.Y
	switch align.Vertical() {
	case TextAlignTop:
		y += m.Ascent
	case TextAlignMiddle:
		y += (m.Ascent - m.Descent) / 2
	case TextAlignBottom:
		y -= m.Descent
	}
	return Point{X: x, Y: y}
}

type measureKey struct {
	text   string
	family string
	size   float64
}

type faceKey struct {
	family string
	size   float64
}

// FontManager resolves font faces and measures text. Faces come from
// registered OpenType data; unregistered families fall back to a bundled
// bitmap face scaled to the requested size.
type FontManager struct {
	mu          sync.RWMutex
	fonts       map[string]*opentype.Font
	defaultName string
	faces       *lru.Cache[faceKey, font.Face]
	measures    *lru.Cache[measureKey, TextMetrics]
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with only the fallback face.
func NewFontManager() (*FontManager, error) {
	faces, err := lru.New[faceKey, font.Face](faceCacheSize)
	if err != nil {
		return nil, err
	}
	measures, err := lru.New[measureKey, TextMetrics](measureCacheSize)
	if err != nil {
		return nil, err
	}
	return &FontManager{
		fonts:    make(map[string]*opentype.Font),
		faces:    faces,
		measures: measures,
	}, nil
}

// DefaultFontManagerErr returns the shared font manager.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.ElementsError{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns the shared font manager, or nil if it failed
// to initialize.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a font family from TrueType or OpenType data.
// The first registered family becomes the default.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = f
	if m.defaultName == "" {
		m.defaultName = name
	}
	m.faces.Purge()
	m.measures.Purge()
	return nil
}

// LoadFont reads a font file and registers it under name.
func (m *FontManager) LoadFont(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load font %q: %w", name, err)
	}
	return m.RegisterFont(name, data)
}

// HasFont reports whether a family has been registered.
func (m *FontManager) HasFont(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.fonts[name]
	return ok
}

// Face resolves a font face for the given style. The second result is the
// scale to apply to the face's metrics to reach the requested size; it is 1
// for registered fonts.
func (m *FontManager) Face(style TextStyle) (font.Face, float64, error) {
	size := style.size()
	m.mu.RLock()
	family := style.FontFamily
	if family == "" {
		family = m.defaultName
	}
	f, ok := m.fonts[family]
	m.mu.RUnlock()
	if !ok {
		return basicfont.Face7x13, size / basicFontSize, nil
	}

	key := faceKey{family: family, size: size}
	if face, ok := m.faces.Get(key); ok {
		return face, 1, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("face %q at %v: %w", family, size, err)
	}
	m.faces.Add(key, face)
	return face, 1, nil
}

// Measure returns the metrics of a single line of text.
func (m *FontManager) Measure(text string, style TextStyle) (TextMetrics, error) {
	key := measureKey{text: text, family: style.FontFamily, size: style.size()}
	if metrics, ok := m.measures.Get(key); ok {
		return metrics, nil
	}
	face, scale, err := m.Face(style)
	if err != nil {
		return TextMetrics{}, err
	}
	fm := face.Metrics()
	metrics := TextMetrics{
		Width:   fixedToFloat(font.MeasureString(face, text)) * scale,
		Ascent:  fixedToFloat(fm.Ascent) * scale,
		Descent: fixedToFloat(fm.Descent) * scale,
	}
	m.measures.Add(key, metrics)
	return metrics, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// measureWith measures through the given manager, falling back to the
// default manager, reporting failures instead of returning them.
func measureWith(m *FontManager, op, text string, style TextStyle) TextMetrics {
	if m == nil {
		m = DefaultFontManager()
	}
	if m == nil {
		return TextMetrics{}
	}
	metrics, err := m.Measure(text, style)
	if err != nil {
		errors.Report(&errors.ElementsError{Op: op, Kind: errors.KindResource, Err: err})
		return TextMetrics{}
	}
	return metrics
}

// MeasureText measures text with the default font manager. Failures are
// reported through the error handler and yield zero metrics.
func MeasureText(text string, style TextStyle) TextMetrics {
	return measureWith(nil, "graphics.MeasureText", text, style)
}
