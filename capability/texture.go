// Package capability derives what an adapter can do with its texture formats
// and how its limits compare to the WebGPU baseline.
package capability

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gpu-tools/gpuinfo/format"
)

// TextureUsages is the set of ways a texture of a given format may be used.
type TextureUsages uint8

const (
	UsageCopySrc TextureUsages = 1 << iota
	UsageCopyDst
	UsageTextureBinding
	UsageStorageBinding
	UsageRenderAttachment
)

var usageNames = []struct {
	bit  TextureUsages
	name string
}{
	{UsageCopySrc, "COPY_SRC"},
	{UsageCopyDst, "COPY_DST"},
	{UsageTextureBinding, "TEXTURE_BINDING"},
	{UsageStorageBinding, "STORAGE_BINDING"},
	{UsageRenderAttachment, "RENDER_ATTACHMENT"},
}

func (u TextureUsages) String() string {
	var parts []string
	for _, n := range usageNames {
		if u&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// FormatFlags describe sampling and attachment behavior of a format.
type FormatFlags uint8

const (
	FlagFilterable FormatFlags = 1 << iota
	FlagBlendable
	FlagMultisampleX4
	FlagMultisampleResolve
	FlagStorageReadWrite
)

var flagNames = []struct {
	bit  FormatFlags
	name string
}{
	{FlagFilterable, "FILTERABLE"},
	{FlagBlendable, "BLENDABLE"},
	{FlagMultisampleX4, "MULTISAMPLE_X4"},
	{FlagMultisampleResolve, "MULTISAMPLE_RESOLVE"},
	{FlagStorageReadWrite, "STORAGE_READ_WRITE"},
}

func (f FormatFlags) String() string {
	var parts []string
	for _, n := range flagNames {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// TextureFormatFeatures is what an adapter supports for one texture format.
type TextureFormatFeatures struct {
	AllowedUsages TextureUsages
	Flags         FormatFlags
}

// Supported reports whether the format can be used at all.
func (t TextureFormatFeatures) Supported() bool {
	return t.AllowedUsages != 0
}

func (t TextureFormatFeatures) String() string {
	return "usages=" + t.AllowedUsages.String() + " flags=" + t.Flags.String()
}

type formatCaps struct {
	required   Feature
	noCopy     bool
	renderable bool
	storage    bool
	flags      FormatFlags
	float32    bool
}

const (
	colorFlags = FlagFilterable | FlagBlendable | FlagMultisampleX4 | FlagMultisampleResolve
	intFlags   = FlagMultisampleX4
	depthFlags = FlagMultisampleX4
)

// formatTable holds the guaranteed WebGPU capabilities of each format.
var formatTable = map[wgpu.TextureFormat]formatCaps{
	wgpu.TextureFormatR8Unorm:        {renderable: true, flags: colorFlags},
	wgpu.TextureFormatR8Snorm:        {flags: FlagFilterable},
	wgpu.TextureFormatR8Uint:         {renderable: true, flags: intFlags},
	wgpu.TextureFormatR8Sint:         {renderable: true, flags: intFlags},
	wgpu.TextureFormatR16Uint:        {renderable: true, flags: intFlags},
	wgpu.TextureFormatR16Sint:        {renderable: true, flags: intFlags},
	wgpu.TextureFormatR16Float:       {renderable: true, flags: colorFlags},
	wgpu.TextureFormatRG8Unorm:       {renderable: true, flags: colorFlags},
	wgpu.TextureFormatRG8Snorm:       {flags: FlagFilterable},
	wgpu.TextureFormatRG8Uint:        {renderable: true, flags: intFlags},
	wgpu.TextureFormatRG8Sint:        {renderable: true, flags: intFlags},
	wgpu.TextureFormatR32Uint:        {renderable: true, storage: true, flags: FlagStorageReadWrite},
	wgpu.TextureFormatR32Sint:        {renderable: true, storage: true, flags: FlagStorageReadWrite},
	wgpu.TextureFormatR32Float:       {renderable: true, storage: true, float32: true, flags: FlagMultisampleX4 | FlagStorageReadWrite},
	wgpu.TextureFormatRG16Uint:       {renderable: true, flags: intFlags},
	wgpu.TextureFormatRG16Sint:       {renderable: true, flags: intFlags},
	wgpu.TextureFormatRG16Float:      {renderable: true, flags: colorFlags},
	wgpu.TextureFormatRGBA8Unorm:     {renderable: true, storage: true, flags: colorFlags},
	wgpu.TextureFormatRGBA8UnormSrgb: {renderable: true, flags: colorFlags},
	wgpu.TextureFormatRGBA8Snorm:     {storage: true, flags: FlagFilterable},
	wgpu.TextureFormatRGBA8Uint:      {renderable: true, storage: true, flags: intFlags},
	wgpu.TextureFormatRGBA8Sint:      {renderable: true, storage: true, flags: intFlags},
	wgpu.TextureFormatBGRA8Unorm:     {renderable: true, flags: colorFlags},
	wgpu.TextureFormatBGRA8UnormSrgb: {renderable: true, flags: colorFlags},
	wgpu.TextureFormatRGB10A2Uint:    {renderable: true, flags: intFlags},
	wgpu.TextureFormatRGB10A2Unorm:   {renderable: true, flags: colorFlags},
	wgpu.TextureFormatRG11B10Ufloat:  {flags: FlagFilterable},
	wgpu.TextureFormatRGB9E5Ufloat:   {flags: FlagFilterable},
	wgpu.TextureFormatRG32Uint:       {renderable: true, storage: true},
	wgpu.TextureFormatRG32Sint:       {renderable: true, storage: true},
	wgpu.TextureFormatRG32Float:      {renderable: true, storage: true, float32: true},
	wgpu.TextureFormatRGBA16Uint:     {renderable: true, storage: true, flags: intFlags},
	wgpu.TextureFormatRGBA16Sint:     {renderable: true, storage: true, flags: intFlags},
	wgpu.TextureFormatRGBA16Float:    {renderable: true, storage: true, flags: colorFlags},
	wgpu.TextureFormatRGBA32Uint:     {renderable: true, storage: true},
	wgpu.TextureFormatRGBA32Sint:     {renderable: true, storage: true},
	wgpu.TextureFormatRGBA32Float:    {renderable: true, storage: true, float32: true},

	wgpu.TextureFormatStencil8:             {renderable: true, flags: depthFlags},
	wgpu.TextureFormatDepth16Unorm:         {renderable: true, flags: depthFlags},
	wgpu.TextureFormatDepth24Plus:          {renderable: true, noCopy: true, flags: depthFlags},
	wgpu.TextureFormatDepth24PlusStencil8:  {renderable: true, noCopy: true, flags: depthFlags},
	wgpu.TextureFormatDepth32Float:         {renderable: true, flags: depthFlags},
	wgpu.TextureFormatDepth32FloatStencil8: {required: FeatureDepth32FloatStencil8, renderable: true, flags: depthFlags},
}

// FormatFeatures returns what an adapter exposing the given features supports
// for format f. Formats gated behind a missing feature, and formats outside the
// catalog, report
// no usages.
func FormatFeatures(f wgpu.TextureFormat, features FeatureSet) TextureFormatFeatures {
	caps, ok := formatTable[f]
	if !ok {
		switch format.FamilyOf(f) {
		case format.FamilyBC:
			caps = formatCaps{required: FeatureTextureCompressionBC, flags: FlagFilterable}
		case format.FamilyETC2:
			caps = formatCaps{required: FeatureTextureCompressionETC2, flags: FlagFilterable}
		default:
			return TextureFormatFeatures{}
		}
	}
	if caps.required != "" && !features.Has(caps.required) {
		return TextureFormatFeatures{}
	}

	switch f {
	case wgpu.TextureFormatRG11B10Ufloat:
		if features.Has(FeatureRG11B10UfloatRender) {
			caps.renderable = true
			caps.flags |= FlagBlendable | FlagMultisampleX4 | FlagMultisampleResolve
		}
	case wgpu.TextureFormatBGRA8Unorm:
		if features.Has(FeatureBGRA8UnormStorage) {
			caps.storage = true
		}
	}
	if caps.float32 && features.Has(FeatureFloat32Filterable) {
		caps.flags |= FlagFilterable
	}

	out := TextureFormatFeatures{
		AllowedUsages: UsageTextureBinding,
		Flags:         caps.flags,
	}
	if !caps.noCopy {
		out.AllowedUsages |= UsageCopySrc | UsageCopyDst
	}
	if caps.renderable {
		out.AllowedUsages |= UsageRenderAttachment
	}
	if caps.storage {
		out.AllowedUsages |= UsageStorageBinding
	}
	return out
}
