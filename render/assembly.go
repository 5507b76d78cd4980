package render

import (
	"github.com/sumonst21/rnote/scene"
)

// AppendImagesToNode composes a list of images behind-to-front on top
// of an existing scene node. The base node paints first, then each
// image in slice order, so later images occlude earlier ones. A nil
// base composes the images alone. The first invalid image aborts the
// whole composition.
func AppendImagesToNode(base scene.Node, images []Image) (scene.Node, error) {
	nodes, err := ImagesToNodes(images)
	if err != nil {
		return nil, err
	}
	snap := scene.NewSnapshot()
	snap.Append(base)
	for _, n := range nodes {
		snap.Append(n)
	}
	return snap.ToNode(), nil
}

// ImagesToNode composes a list of images into a single scene node in
// paint order. An empty list yields a nil node.
func ImagesToNode(images []Image) (scene.Node, error) {
	return AppendImagesToNode(nil, images)
}
