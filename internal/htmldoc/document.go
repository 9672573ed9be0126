// Package htmldoc turns a static HTML file into a palette.Document.
//
// Only inline declarations are resolved: the style attribute and the legacy
// bgcolor attribute. Stylesheets are not applied, so a page styled entirely
// from <style> blocks samples as black text on a transparent page.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pickperfect/internal/colormodel"
	"pickperfect/internal/palette"
)

const (
	defaultText       = "rgb(0, 0, 0)"
	defaultBackground = "rgba(0, 0, 0, 0)"
)

type Element struct {
	Tag     string
	visible bool
	style   palette.Style
}

func (e *Element) Rendered() bool               { return e.visible }
func (e *Element) ComputedStyle() palette.Style { return e.style }

type Document struct {
	Title    string
	elements []*Element
}

func (d *Document) Elements() []palette.Element {
	elements := make([]palette.Element, len(d.elements))
	for i, element := range d.elements {
		elements[i] = element
	}
	return elements
}

func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	doc := &Document{elements: make([]*Element, 0)}
	doc.walk(root, inherited{color: defaultText, visible: true})
	return doc, nil
}

// inherited carries the state a child takes from its parent.
type inherited struct {
	color   string
	visible bool
}

func (d *Document) walk(node *html.Node, parent inherited) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		if child.DataAtom == atom.Title && d.Title == "" {
			d.Title = strings.TrimSpace(textContent(child))
		}

		element, state := resolve(child, parent)
		d.elements = append(d.elements, element)
		d.walk(child, state)
	}
}

func resolve(node *html.Node, parent inherited) (*Element, inherited) {
	declarations := parseDeclarations(attr(node, "style"))

	state := inherited{color: parent.color, visible: parent.visible}
	if !rendersBox(node) || strings.EqualFold(declarations["display"], "none") {
		state.visible = false
	}

	if value, ok := declarations["color"]; ok {
		state.color = resolveColor(value, parent.color, parent.color)
	}

	background := defaultBackground
	if value := attr(node, "bgcolor"); value != "" {
		background = value
	}
	if value, ok := declarations["background-color"]; ok {
		background = resolveColor(value, state.color, defaultBackground)
	} else if value, ok := declarations["background"]; ok {
		if token, found := colorToken(value); found {
			background = resolveColor(token, state.color, defaultBackground)
		}
	}

	// Border color follows currentColor unless declared.
	border := state.color
	if value, ok := declarations["border-color"]; ok {
		if token, found := colorToken(value); found {
			border = resolveColor(token, state.color, state.color)
		}
	} else if value, ok := declarations["border"]; ok {
		if token, found := colorToken(value); found {
			border = resolveColor(token, state.color, state.color)
		}
	}

	element := &Element{
		Tag:     node.Data,
		visible: state.visible,
		style: palette.Style{
			Background: background,
			Text:       state.color,
			Border:     border,
		},
	}
	return element, state
}

func rendersBox(node *html.Node) bool {
	switch node.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Template, atom.Title,
		atom.Meta, atom.Link, atom.Base, atom.Noscript:
		return false
	}
	for _, a := range node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "hidden") {
			return false
		}
	}
	return true
}

// resolveColor maps the CSS-wide keywords onto concrete values.
func resolveColor(value string, current string, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "currentcolor":
		return current
	case "inherit", "initial", "unset", "revert":
		return fallback
	}
	return strings.TrimSpace(value)
}

// colorToken finds the first color inside a shorthand value such as
// "1px solid #ccc" or "url(a.png) rgb(1, 2, 3) no-repeat".
func colorToken(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if isColor(trimmed) {
		return trimmed, true
	}

	lower := strings.ToLower(trimmed)
	if start := strings.Index(lower, "rgb"); start >= 0 {
		if end := strings.IndexByte(lower[start:], ')'); end >= 0 {
			candidate := trimmed[start : start+end+1]
			if isColor(candidate) {
				return candidate, true
			}
		}
	}

	for _, field := range strings.Fields(trimmed) {
		if isColor(field) {
			return field, true
		}
	}
	return "", false
}

func isColor(value string) bool {
	if strings.EqualFold(value, "currentcolor") {
		return true
	}
	_, _, ok := colormodel.ParseCSSColor(value)
	return ok
}

func parseDeclarations(style string) map[string]string {
	declarations := make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		name, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}

		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if lower := strings.ToLower(value); strings.HasSuffix(lower, "!important") {
			value = strings.TrimSpace(value[:len(value)-len("!important")])
		}
		if name == "" || value == "" {
			continue
		}
		declarations[name] = value
	}
	return declarations
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func textContent(node *html.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}
