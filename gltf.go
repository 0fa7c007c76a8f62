package trek

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoAnimations is returned when a glTF document holds no animations to make Clips from.
var ErrNoAnimations = errors.New("gltf document has no animations")

// LoadClipsGLTFFile loads a .gltf or .glb file from disk and returns a Clip for each animation in it.
// External buffers are resolved relative to the file.
func LoadClipsGLTFFile(path string) ([]Clip, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading clips from %s: %w", path, err)
	}
	return clipsFromDocument(doc)
}

// LoadClipsGLTFData decodes .gltf or .glb data and returns a Clip for each animation in it. Buffers must be embedded
// in the data (as with .glb files or base64 data URIs).
// Each Clip is named after its animation, and lasts as long as the latest keyframe of any of its channels.
func LoadClipsGLTFData(data []byte) ([]Clip, error) {

	doc := new(gltf.Document)

	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding gltf: %w", err)
	}

	return clipsFromDocument(doc)

}

func clipsFromDocument(doc *gltf.Document) ([]Clip, error) {

	if len(doc.Animations) == 0 {
		return nil, ErrNoAnimations
	}

	clips := make([]Clip, 0, len(doc.Animations))

	for _, gltfAnim := range doc.Animations {

		clip := Clip{Name: gltfAnim.Name}

		for _, sampler := range gltfAnim.Samplers {

			id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)
			if err != nil {
				return nil, fmt.Errorf("reading keyframe times of animation %q: %w", gltfAnim.Name, err)
			}

			times, ok := id.([]float32)
			if !ok {
				return nil, fmt.Errorf("keyframe times of animation %q are %T, not []float32", gltfAnim.Name, id)
			}

			for _, t := range times {
				clip.Length = math32.Max(clip.Length, t)
			}

		}

		clips = append(clips, clip)

	}

	return clips, nil

}
