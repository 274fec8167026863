package capability

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Limit is one named adapter limit. Undefined limits were not reported by
// the driver and carry no meaningful value.
type Limit struct {
	Name      string `json:"name" toml:"name"`
	Value     uint64 `json:"value" toml:"value"`
	Undefined bool   `json:"undefined,omitempty" toml:"undefined,omitempty"`
}

// defaultLimits are the limits every WebGPU implementation must meet.
var defaultLimits = map[string]uint64{
	"maxTextureDimension1D":                     8192,
	"maxTextureDimension2D":                     8192,
	"maxTextureDimension3D":                     2048,
	"maxTextureArrayLayers":                     256,
	"maxBindGroups":                             4,
	"maxBindingsPerBindGroup":                   1000,
	"maxDynamicUniformBuffersPerPipelineLayout": 8,
	"maxDynamicStorageBuffersPerPipelineLayout": 4,
	"maxSampledTexturesPerShaderStage":          16,
	"maxSamplersPerShaderStage":                 16,
	"maxStorageBuffersPerShaderStage":           8,
	"maxStorageTexturesPerShaderStage":          4,
	"maxUniformBuffersPerShaderStage":           12,
	"maxUniformBufferBindingSize":               65536,
	"maxStorageBufferBindingSize":               134217728,
	"minUniformBufferOffsetAlignment":           256,
	"minStorageBufferOffsetAlignment":           256,
	"maxVertexBuffers":                          8,
	"maxBufferSize":                             268435456,
	"maxVertexAttributes":                       16,
	"maxVertexBufferArrayStride":                2048,
	"maxInterStageShaderComponents":             60,
	"maxInterStageShaderVariables":              16,
	"maxColorAttachments":                       8,
	"maxColorAttachmentBytesPerSample":          32,
	"maxComputeWorkgroupStorageSize":            16384,
	"maxComputeInvocationsPerWorkgroup":         256,
	"maxComputeWorkgroupSizeX":                  256,
	"maxComputeWorkgroupSizeY":                  256,
	"maxComputeWorkgroupSizeZ":                  64,
	"maxComputeWorkgroupsPerDimension":          65535,
}

// DefaultLimits returns the WebGPU default limits sorted by name.
func DefaultLimits() []Limit {
	limits := make([]Limit, 0, len(defaultLimits))
	for name, v := range defaultLimits {
		limits = append(limits, Limit{Name: name, Value: v})
	}
	slices.SortFunc(limits, func(a, b Limit) int {
		return strings.Compare(a.Name, b.Name)
	})
	return limits
}

// Shortfall is a limit that does not reach the WebGPU default.
type Shortfall struct {
	Limit string `json:"limit" toml:"limit"`
	Have  uint64 `json:"have" toml:"have"`
	Want  uint64 `json:"want" toml:"want"`
}

// isAlignment reports whether a limit is an alignment, where smaller is
// better.
func isAlignment(name string) bool {
	return strings.HasPrefix(name, "min")
}

// String renders the failed comparison, e.g. "maxBindGroups 2 < 4" or
// "minUniformBufferOffsetAlignment 512 > 256".
func (s Shortfall) String() string {
	return fmt.Sprintf("%s %d %s %d", s.Limit, s.Have, s.Op(), s.Want)
}

// Op is the relation that holds between Have and Want.
func (s Shortfall) Op() string {
	if isAlignment(s.Limit) {
		return ">"
	}
	return "<"
}

// Downlevel summarizes how far an adapter falls short of the WebGPU baseline.
type Downlevel struct {
	Compliant      bool        `json:"compliant" toml:"compliant"`
	ComputeShaders bool        `json:"compute_shaders" toml:"compute_shaders"`
	Shortfalls     []Shortfall `json:"shortfalls,omitempty" toml:"shortfalls,omitempty"`
}

// EvaluateDownlevel compares limits with the WebGPU defaults. Alignment
// limits (min*) fall short when larger than the default, every other limit
// when smaller. Undefined limits and names without a default are ignored.
func EvaluateDownlevel(limits []Limit) Downlevel {
	var d Downlevel
	compute := map[string]bool{}
	for _, l := range limits {
		if l.Undefined {
			continue
		}
		if l.Name == "maxComputeInvocationsPerWorkgroup" || l.Name == "maxComputeWorkgroupsPerDimension" {
			compute[l.Name] = l.Value > 0
		}
		want, ok := defaultLimits[l.Name]
		if !ok {
			continue
		}
		short := l.Value < want
		if isAlignment(l.Name) {
			short = l.Value > want
		}
		if short {
			d.Shortfalls = append(d.Shortfalls, Shortfall{Limit: l.Name, Have: l.Value, Want: want})
		}
	}
	d.Compliant = len(d.Shortfalls) == 0
	d.ComputeShaders = compute["maxComputeInvocationsPerWorkgroup"] && compute["maxComputeWorkgroupsPerDimension"]
	return d
}
