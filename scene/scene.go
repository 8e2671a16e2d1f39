// Package scene decodes element trees from YAML or TOML files
//
// A scene names an optional surface size and a root node. Node styles are written as
// style.Spec values and layered over the tag default when the scene is built.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
)

// Format identifies the scene encoding
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// ErrEmptyScene is returned for input that decodes to nothing
var ErrEmptyScene = errors.New("scene has no root")

// Node is one element in a scene file
type Node struct {
	Tag       string      `yaml:"tag,omitempty" toml:"tag,omitempty"`
	ID        string      `yaml:"id,omitempty" toml:"id,omitempty"`
	Content   string      `yaml:"content,omitempty" toml:"content,omitempty"`
	Focusable bool        `yaml:"focusable,omitempty" toml:"focusable,omitempty"`
	Focused   bool        `yaml:"focused,omitempty" toml:"focused,omitempty"`
	Style     *style.Spec `yaml:"style,omitempty" toml:"style,omitempty"`
	Children  []Node      `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Scene is a decoded scene file
type Scene struct {
	Width  int  `yaml:"width,omitempty" toml:"width,omitempty"` // 0 defers to the caller
	Height int  `yaml:"height,omitempty" toml:"height,omitempty"`
	Root   Node `yaml:"root" toml:"root"`
}

// FormatFromPath picks the format by file extension; anything but .toml is YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and decodes the scene at path
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Decode parses data; unknown fields are rejected
func Decode(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}
	if s.Root.isEmpty() {
		return nil, ErrEmptyScene
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("scene size %dx%d is negative", s.Width, s.Height)
	}
	return &s, nil
}

func (n *Node) isEmpty() bool {
	return n.Tag == "" && n.ID == "" && n.Content == "" && n.Style == nil && len(n.Children) == 0
}

// Element builds the element tree, resolving each node's style against table
// Nodes without a style block keep a nil style so the tag default applies at layout time
func (s *Scene) Element(table *style.Table) (*layout.Element, error) {
	if table == nil {
		table = style.DefaultTable()
	}
	var errs []error
	el := buildElement(&s.Root, table, "root", &errs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &el, nil
}

// Size returns the scene surface, falling back to the given dimensions per axis
func (s *Scene) Size(fallbackW, fallbackH int) (int, int) {
	w, h := s.Width, s.Height
	if w == 0 {
		w = fallbackW
	}
	if h == 0 {
		h = fallbackH
	}
	return w, h
}

func buildElement(n *Node, table *style.Table, path string, errs *[]error) layout.Element {
	el := layout.Element{
		Tag:       n.Tag,
		ID:        n.ID,
		Content:   n.Content,
		Focusable: n.Focusable,
		Focused:   n.Focused,
	}
	if n.Style != nil {
		st, err := n.Style.Apply(table.Lookup(n.Tag))
		if err != nil {
			*errs = append(*errs, fmt.Errorf("%s.style: %w", path, err))
		} else {
			el.Style = &st
		}
	}
	if len(n.Children) > 0 {
		el.Children = make([]layout.Element, len(n.Children))
		for i := range n.Children {
			el.Children[i] = buildElement(&n.Children[i], table, fmt.Sprintf("%s.children[%d]", path, i), errs)
		}
	}
	return el
}
