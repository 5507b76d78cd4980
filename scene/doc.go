// Package scene provides immutable scene-node trees for displaying
// rendered canvas content.
//
// A Node is a value describing a renderable primitive or a
// transform/composition of other nodes. Nodes are built once and never
// mutated, which keeps composition side-effect free: the display
// backend consumes a node tree, it never owns it.
//
// The package also defines the display capture boundary: a Widget that
// is attached to a display Root can render a node tree into a
// MemoryTexture. A widget without a root is a valid "not ready" state,
// not an error.
package scene
