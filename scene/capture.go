package scene

import (
	"github.com/sumonst21/rnote/geometry"
)

// NodeRenderer renders node trees into textures. The display backend
// provides the canonical implementation; SoftwareNodeRenderer is the
// CPU reference.
type NodeRenderer interface {
	// RenderTexture renders the node, optionally clipped to the
	// viewport rectangle (document space), into a texture.
	RenderTexture(node Node, viewport *geometry.Aabb) (*MemoryTexture, error)
}

// Root is an attached display root that can hand out a renderer.
type Root interface {
	Renderer() NodeRenderer
}

// Widget is the display-side handle textures are captured through. A
// widget that has not been attached to a display root yet returns a
// nil Root; that is an expected transient state during initialization.
type Widget interface {
	Root() Root
}

// CaptureNodeTexture asks the widget's display root to render a node
// tree into a texture. It returns (nil, nil) - no texture, no error -
// when the widget is not attached to a root or the root has no
// renderer yet. Callers must distinguish this "not ready" outcome from
// a true render failure.
func CaptureNodeTexture(w Widget, node Node, viewport *geometry.Aabb) (*MemoryTexture, error) {
	if w == nil || node == nil {
		return nil, nil
	}
	root := w.Root()
	if root == nil {
		return nil, nil
	}
	renderer := root.Renderer()
	if renderer == nil {
		return nil, nil
	}
	return renderer.RenderTexture(node, viewport)
}

// staticWidget adapts a Root into a Widget for headless use.
type staticWidget struct {
	root Root
}

// WidgetOf wraps a display root as a widget. Passing nil yields a
// permanently unattached widget.
func WidgetOf(root Root) Widget {
	return staticWidget{root: root}
}

func (w staticWidget) Root() Root { return w.root }
