package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// updateSnapshotsEnv makes MatchesFile rewrite golden files when set to 1.
const updateSnapshotsEnv = "ELEMENTS_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the element tree structure and display operations.
type Snapshot struct {
	Tree       []*ElementNode `json:"tree"`
	DisplayOps []DisplayOp    `json:"displayOps,omitempty"`
}

// ElementNode represents a node in the serialized element tree.
type ElementNode struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Bounds     *[4]float64    `json:"bounds,omitempty"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*ElementNode `json:"children,omitempty"`
}

// propertyWhitelist defines which fields to serialize per element type.
// Types not listed here are serialized with type and bounds only.
var propertyWhitelist = map[string][]string{
	"LabelElement":    {"text", "FontSize"},
	"SliderElement":   {"value", "vertical"},
	"DialElement":     {"value"},
	"ButtonElement":   {"pressed"},
	"BoxElement":      {"Color", "Radius"},
	"ImageElement":    {"Fit"},
	"MarginElement":   {"Insets"},
	"AlignElement":    {"H", "V"},
	"FloatingElement": {"bounds"},
	"TileElement":     {"horizontal"},
}

// CaptureSnapshot captures the content tree and the display operations of
// a full repaint.
func (t *ViewTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	counter := &typeCounter{}
	for _, layer := range t.view.Content() {
		snap.Tree = append(snap.Tree, t.captureNode(layer, counter))
	}
	snap.DisplayOps = serializeDisplayList(t.Draw())
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// ELEMENTS_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

// typeCounter assigns stable IDs like "LabelElement#0", "LabelElement#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func (t *ViewTester) captureNode(e element.Element, counter *typeCounter) *ElementNode {
	typeName := elementTypeName(e)
	node := &ElementNode{ID: counter.next(typeName), Type: typeName}
	if r, ok := t.BoundsOf(e); ok {
		node.Bounds = &[4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
	}
	if props := captureProperties(e, typeName); len(props) > 0 {
		node.Properties = props
	}
	for _, child := range children(e) {
		node.Children = append(node.Children, t.captureNode(child, counter))
	}
	return node
}

// elementTypeName returns the type name without package path or type
// arguments: "Ref" for *element.Ref[*widgets.DialElement].
func elementTypeName(e element.Element) string {
	t := reflect.TypeOf(e)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func captureProperties(e element.Element, typeName string) map[string]any {
	whitelist, ok := propertyWhitelist[typeName]
	if !ok {
		return nil
	}

	props := make(map[string]any)
	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for _, fieldName := range whitelist {
		field := v.FieldByName(fieldName)
		if !field.IsValid() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[fieldName] = val
		}
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type() == reflect.TypeOf(graphics.Color(0)) {
			return serializeColor(graphics.Color(v.Uint()))
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Struct:
		return serializeStruct(v)
	default:
		return nil
	}
}

// serializeStruct collects the exported fields of a struct value into a
// map. It works for unexported struct fields too.
func serializeStruct(v reflect.Value) any {
	t := v.Type()
	m := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if val := serializeFieldValue(v.Field(i)); val != nil {
			m[f.Name] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
