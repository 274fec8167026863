package discover

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gpu-tools/gpuinfo/capability"
)

var ErrNoAdapters = errors.New("no graphics adapters found. driver might not be loaded")

// Info describes an adapter.
type Info struct {
	Name         string `json:"name" toml:"name"`
	VendorName   string `json:"vendor_name,omitempty" toml:"vendor_name,omitempty"`
	Vendor       uint32 `json:"vendor" toml:"vendor"`
	Device       uint32 `json:"device" toml:"device"`
	Architecture string `json:"architecture,omitempty" toml:"architecture,omitempty"`
	Driver       string `json:"driver,omitempty" toml:"driver,omitempty"`
	Type         string `json:"type" toml:"type"`
	Backend      string `json:"backend" toml:"backend"`
}

// Adapter is a graphics adapter that can be queried for metadata.
type Adapter interface {
	Info() Info
	Features() capability.FeatureSet
	Limits() []capability.Limit
	Release()
}

// enumerate is overwritten in tests.
var enumerate = enumerateWGPU

// Adapters returns every adapter on every backend. The caller must Release
// each of them.
func Adapters() ([]Adapter, error) {
	adapters, err := enumerate()
	if err != nil {
		return nil, fmt.Errorf("enumerating adapters: %w", err)
	}
	if len(adapters) == 0 {
		return nil, ErrNoAdapters
	}
	return adapters, nil
}

// ReleaseAll releases every adapter.
func ReleaseAll(adapters []Adapter) {
	for _, a := range adapters {
		a.Release()
	}
}

func enumerateWGPU() ([]Adapter, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, errors.New("creating wgpu instance")
	}
	defer instance.Release()

	var adapters []Adapter
	for _, a := range instance.EnumerateAdapters(nil) {
		adapters = append(adapters, &wgpuAdapter{adapter: a})
	}
	return adapters, nil
}

type wgpuAdapter struct {
	adapter *wgpu.Adapter
}

func (a *wgpuAdapter) Info() Info {
	ai := a.adapter.GetInfo()
	return Info{
		Name:         ai.Name,
		VendorName:   ai.VendorName,
		Vendor:       ai.VendorId,
		Device:       ai.DeviceId,
		Architecture: ai.Architecture,
		Driver:       ai.DriverDescription,
		Type:         ai.AdapterType.String(),
		Backend:      ai.BackendType.String(),
	}
}

func (a *wgpuAdapter) Features() capability.FeatureSet {
	var features []capability.Feature
	for _, f := range a.adapter.EnumerateFeatures() {
		features = append(features, featureName(f))
	}
	return capability.NewFeatureSet(features...)
}

func (a *wgpuAdapter) Limits() []capability.Limit {
	return limitsFromStruct(a.adapter.GetLimits().Limits)
}

func (a *wgpuAdapter) Release() {
	a.adapter.Release()
}

// wgpuFeatures maps wgpu feature names onto their WebGPU spelling.
var wgpuFeatures = map[wgpu.FeatureName]capability.Feature{
	wgpu.FeatureNameDepthClipControl:        capability.FeatureDepthClipControl,
	wgpu.FeatureNameDepth32FloatStencil8:    capability.FeatureDepth32FloatStencil8,
	wgpu.FeatureNameTimestampQuery:          capability.FeatureTimestampQuery,
	wgpu.FeatureNameTextureCompressionBC:    capability.FeatureTextureCompressionBC,
	wgpu.FeatureNameTextureCompressionETC2:  capability.FeatureTextureCompressionETC2,
	wgpu.FeatureNameTextureCompressionASTC:  capability.FeatureTextureCompressionASTC,
	wgpu.FeatureNameIndirectFirstInstance:   capability.FeatureIndirectFirstInstance,
	wgpu.FeatureNameShaderF16:               capability.FeatureShaderF16,
	wgpu.FeatureNameRG11B10UfloatRenderable: capability.FeatureRG11B10UfloatRender,
	wgpu.FeatureNameBGRA8UnormStorage:       capability.FeatureBGRA8UnormStorage,
	wgpu.FeatureNameFloat32Filterable:       capability.FeatureFloat32Filterable,
}

// featureName falls back to the binding's own name for native-only features.
func featureName(f wgpu.FeatureName) capability.Feature {
	if name, ok := wgpuFeatures[f]; ok {
		return name
	}
	return capability.Feature(f.String())
}
