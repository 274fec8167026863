package capability

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Feature is a WebGPU feature name, e.g. "texture-compression-bc".
type Feature string

// Features that change texture format support.
const (
	FeatureDepthClipControl       Feature = "depth-clip-control"
	FeatureDepth32FloatStencil8   Feature = "depth32float-stencil8"
	FeatureTimestampQuery         Feature = "timestamp-query"
	FeatureTextureCompressionBC   Feature = "texture-compression-bc"
	FeatureTextureCompressionETC2 Feature = "texture-compression-etc2"
	FeatureTextureCompressionASTC Feature = "texture-compression-astc"
	FeatureIndirectFirstInstance  Feature = "indirect-first-instance"
	FeatureShaderF16              Feature = "shader-f16"
	FeatureRG11B10UfloatRender    Feature = "rg11b10ufloat-renderable"
	FeatureBGRA8UnormStorage      Feature = "bgra8unorm-storage"
	FeatureFloat32Filterable      Feature = "float32-filterable"
)

// FeatureSet is an immutable set of features.
type FeatureSet struct {
	names []Feature
}

// NewFeatureSet returns a set holding the given features, sorted and without
// duplicates.
func NewFeatureSet(features ...Feature) FeatureSet {
	names := slices.Clone(features)
	slices.Sort(names)
	return FeatureSet{names: slices.Compact(names)}
}

// Has reports whether f is in the set.
func (s FeatureSet) Has(f Feature) bool {
	_, ok := slices.BinarySearch(s.names, f)
	return ok
}

// List returns the features in sorted order.
func (s FeatureSet) List() []Feature {
	return slices.Clone(s.names)
}

func (s FeatureSet) Len() int { return len(s.names) }

func (s FeatureSet) String() string {
	parts := make([]string, len(s.names))
	for i, f := range s.names {
		parts[i] = string(f)
	}
	return strings.Join(parts, "|")
}
