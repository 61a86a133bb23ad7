package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/widgets"
)

// Finder locates elements in the content of a view.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root element.Element) []element.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []element.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() element.Element {
	if len(r.elements) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("FinderResult.First: no matches for %s", desc))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match or nil.
func (r FinderResult) FirstOrNil() element.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) element.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("FinderResult.At: index %d out of range [0, %d)", index, len(r.elements)))
	}
	return r.elements[index]
}

// All returns all matches.
func (r FinderResult) All() []element.Element { return r.elements }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.elements) }

// Exists reports whether there is at least one match.
func (r FinderResult) Exists() bool { return len(r.elements) > 0 }

// Find evaluates finder over every content layer, back to front.
func (t *ViewTester) Find(finder Finder) FinderResult {
	var matches []element.Element
	for _, layer := range t.view.Content() {
		matches = append(matches, finder.Evaluate(layer)...)
	}
	return FinderResult{elements: matches, finder: finder}
}

type typeFinder struct {
	typ reflect.Type
}

func (f *typeFinder) Evaluate(root element.Element) []element.Element {
	return collectMatches(root, func(e element.Element) bool {
		return reflect.TypeOf(e) == f.typ
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typ)
}

// ByType returns a finder that matches elements of type T.
func ByType[T element.Element]() Finder {
	return &typeFinder{typ: reflect.TypeFor[T]()}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root element.Element) []element.Element {
	return collectMatches(root, func(e element.Element) bool {
		label, ok := e.(*widgets.LabelElement)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(label.Text(), f.text)
		}
		return label.Text() == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches labels showing exactly text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches labels whose text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type predicateFinder struct {
	fn   func(element.Element) bool
	desc string
}

func (f *predicateFinder) Evaluate(root element.Element) []element.Element {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(element.Element) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds elements matching 'matching' that are descendants
// of elements matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root element.Element) []element.Element {
	var results []element.Element
	seen := make(map[element.Element]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range children(ancestor) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying 'matching'
// that are descendants of elements matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// children returns the elements directly below e: the children of a
// container, or the subject of a wrapper. The bare Base inside a tracker
// is not reported.
func children(e element.Element) []element.Element {
	switch n := e.(type) {
	case interface{ Children() []element.Element }:
		return n.Children()
	case interface{ Unwrap() element.Element }:
		inner := n.Unwrap()
		if _, base := inner.(element.Base); inner == nil || base {
			return nil
		}
		return []element.Element{inner}
	}
	return nil
}

// collectMatches performs depth-first pre-order traversal, collecting
// elements that satisfy the predicate.
func collectMatches(root element.Element, predicate func(element.Element) bool) []element.Element {
	var results []element.Element
	walkTree(root, func(e element.Element) bool {
		if predicate(e) {
			results = append(results, e)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal of the element tree.
// The visitor returns false to stop traversal.
func walkTree(root element.Element, visitor func(element.Element) bool) bool {
	if !visitor(root) {
		return false
	}
	for _, child := range children(root) {
		if !walkTree(child, visitor) {
			return false
		}
	}
	return true
}
