package layout

import (
	"encoding/json"
	"fmt"
	"io"
)

// debugNode is the JSON projection of a Layout node
type debugNode struct {
	Tag      string       `json:"tag"`
	ID       string       `json:"id,omitempty"`
	Display  string       `json:"display"`
	Rect     Rect         `json:"rect"`
	Content  string       `json:"content,omitempty"`
	Focused  bool         `json:"focused,omitempty"`
	Children []*debugNode `json:"children,omitempty"`
}

func toDebug(l *Layout) *debugNode {
	if l == nil {
		return nil
	}
	n := &debugNode{
		Tag:     l.Tag,
		ID:      l.ID,
		Display: l.Styles.Display.String(),
		Rect:    l.Rect,
		Content: l.Content,
		Focused: l.Focused,
	}
	for _, c := range l.Children {
		n.Children = append(n.Children, toDebug(c))
	}
	return n
}

// WriteDebugJSON writes the layout tree as indented JSON for inspection
func WriteDebugJSON(l *Layout, w io.Writer) error {
	if l == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDebug(l)); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}
