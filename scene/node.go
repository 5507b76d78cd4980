package scene

import (
	"github.com/sumonst21/rnote/geometry"
)

// Node is an immutable renderable value. A node either draws a
// primitive (TextureNode) or arranges other nodes (TransformNode,
// ContainerNode). Children paint in order: later nodes paint over
// earlier ones.
type Node interface {
	// Bounds returns the axis-aligned hull of the node's content in
	// the coordinate space of its parent.
	Bounds() geometry.Aabb
}

// TextureNode draws a texture into a document-space rectangle.
type TextureNode struct {
	texture *MemoryTexture
	rect    geometry.Aabb
}

// NewTextureNode creates a node painting the texture stretched over
// the given rectangle.
func NewTextureNode(texture *MemoryTexture, rect geometry.Aabb) TextureNode {
	return TextureNode{texture: texture, rect: rect}
}

// Texture returns the texture painted by this node.
func (n TextureNode) Texture() *MemoryTexture { return n.texture }

// Rect returns the rectangle the texture is painted into.
func (n TextureNode) Rect() geometry.Aabb { return n.rect }

// Bounds implements Node.
func (n TextureNode) Bounds() geometry.Aabb { return n.rect }

// TransformNode applies an affine transform to a child node.
type TransformNode struct {
	child     Node
	transform geometry.Transform
}

// NewTransformNode wraps child in the given transform.
func NewTransformNode(child Node, transform geometry.Transform) TransformNode {
	return TransformNode{child: child, transform: transform}
}

// Child returns the wrapped node.
func (n TransformNode) Child() Node { return n.child }

// Transform returns the applied transform.
func (n TransformNode) Transform() geometry.Transform { return n.transform }

// Bounds implements Node. It returns the hull of the transformed child
// bounds.
func (n TransformNode) Bounds() geometry.Aabb {
	if n.child == nil {
		return geometry.Aabb{}
	}
	b := n.child.Bounds()
	corners := [4]geometry.Vec2{
		b.Mins,
		{X: b.Maxs.X, Y: b.Mins.Y},
		{X: b.Mins.X, Y: b.Maxs.Y},
		b.Maxs,
	}
	first := n.transform.Apply(corners[0])
	hull := geometry.Aabb{Mins: first, Maxs: first}
	for _, c := range corners[1:] {
		p := n.transform.Apply(c)
		hull.Mins = hull.Mins.Min(p)
		hull.Maxs = hull.Maxs.Max(p)
	}
	return hull
}

// ContainerNode paints an ordered list of children. The slice order is
// the paint order.
type ContainerNode struct {
	children []Node
}

// NewContainerNode creates a container over the given children. The
// slice is copied so later appends by the caller cannot mutate the
// node.
func NewContainerNode(children ...Node) ContainerNode {
	cp := make([]Node, len(children))
	copy(cp, children)
	return ContainerNode{children: cp}
}

// Children returns the children in paint order. The returned slice
// must not be modified.
func (n ContainerNode) Children() []Node { return n.children }

// Bounds implements Node.
func (n ContainerNode) Bounds() geometry.Aabb {
	var bounds geometry.Aabb
	seen := false
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if !seen {
			bounds = c.Bounds()
			seen = true
		} else {
			bounds = bounds.Union(c.Bounds())
		}
	}
	return bounds
}
