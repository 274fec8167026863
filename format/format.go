// Package format names the texture formats gpuinfo knows about and resolves
// user supplied format names into wgpu texture formats.
package format

import "github.com/cogentcore/webgpu/wgpu"

// Family groups formats that share an encoding scheme.
type Family string

const (
	FamilyPlain        Family = "plain"
	FamilyPacked       Family = "packed"
	FamilyDepthStencil Family = "depth-stencil"
	FamilyBC           Family = "bc"
	FamilyETC2         Family = "etc2"
)

type entry struct {
	format wgpu.TextureFormat
	name   string
	family Family
}

// catalog lists every known format with its canonical WebGPU name. The
// binding's own String() spells compressed formats differently, e.g.
// bc1rgba-unorm, so names are kept here.
var catalog = []entry{
	{wgpu.TextureFormatR8Unorm, "r8unorm", FamilyPlain},
	{wgpu.TextureFormatR8Snorm, "r8snorm", FamilyPlain},
	{wgpu.TextureFormatR8Uint, "r8uint", FamilyPlain},
	{wgpu.TextureFormatR8Sint, "r8sint", FamilyPlain},
	{wgpu.TextureFormatR16Uint, "r16uint", FamilyPlain},
	{wgpu.TextureFormatR16Sint, "r16sint", FamilyPlain},
	{wgpu.TextureFormatR16Float, "r16float", FamilyPlain},
	{wgpu.TextureFormatRG8Unorm, "rg8unorm", FamilyPlain},
	{wgpu.TextureFormatRG8Snorm, "rg8snorm", FamilyPlain},
	{wgpu.TextureFormatRG8Uint, "rg8uint", FamilyPlain},
	{wgpu.TextureFormatRG8Sint, "rg8sint", FamilyPlain},
	{wgpu.TextureFormatR32Uint, "r32uint", FamilyPlain},
	{wgpu.TextureFormatR32Sint, "r32sint", FamilyPlain},
	{wgpu.TextureFormatR32Float, "r32float", FamilyPlain},
	{wgpu.TextureFormatRG16Uint, "rg16uint", FamilyPlain},
	{wgpu.TextureFormatRG16Sint, "rg16sint", FamilyPlain},
	{wgpu.TextureFormatRG16Float, "rg16float", FamilyPlain},
	{wgpu.TextureFormatRGBA8Unorm, "rgba8unorm", FamilyPlain},
	{wgpu.TextureFormatRGBA8UnormSrgb, "rgba8unorm-srgb", FamilyPlain},
	{wgpu.TextureFormatRGBA8Snorm, "rgba8snorm", FamilyPlain},
	{wgpu.TextureFormatRGBA8Uint, "rgba8uint", FamilyPlain},
	{wgpu.TextureFormatRGBA8Sint, "rgba8sint", FamilyPlain},
	{wgpu.TextureFormatBGRA8Unorm, "bgra8unorm", FamilyPlain},
	{wgpu.TextureFormatBGRA8UnormSrgb, "bgra8unorm-srgb", FamilyPlain},
	{wgpu.TextureFormatRGB10A2Uint, "rgb10a2uint", FamilyPacked},
	{wgpu.TextureFormatRGB10A2Unorm, "rgb10a2unorm", FamilyPacked},
	{wgpu.TextureFormatRG11B10Ufloat, "rg11b10ufloat", FamilyPacked},
	{wgpu.TextureFormatRGB9E5Ufloat, "rgb9e5ufloat", FamilyPacked},
	{wgpu.TextureFormatRG32Uint, "rg32uint", FamilyPlain},
	{wgpu.TextureFormatRG32Sint, "rg32sint", FamilyPlain},
	{wgpu.TextureFormatRG32Float, "rg32float", FamilyPlain},
	{wgpu.TextureFormatRGBA16Uint, "rgba16uint", FamilyPlain},
	{wgpu.TextureFormatRGBA16Sint, "rgba16sint", FamilyPlain},
	{wgpu.TextureFormatRGBA16Float, "rgba16float", FamilyPlain},
	{wgpu.TextureFormatRGBA32Uint, "rgba32uint", FamilyPlain},
	{wgpu.TextureFormatRGBA32Sint, "rgba32sint", FamilyPlain},
	{wgpu.TextureFormatRGBA32Float, "rgba32float", FamilyPlain},

	{wgpu.TextureFormatStencil8, "stencil8", FamilyDepthStencil},
	{wgpu.TextureFormatDepth16Unorm, "depth16unorm", FamilyDepthStencil},
	{wgpu.TextureFormatDepth24Plus, "depth24plus", FamilyDepthStencil},
	{wgpu.TextureFormatDepth24PlusStencil8, "depth24plus-stencil8", FamilyDepthStencil},
	{wgpu.TextureFormatDepth32Float, "depth32float", FamilyDepthStencil},
	{wgpu.TextureFormatDepth32FloatStencil8, "depth32float-stencil8", FamilyDepthStencil},

	{wgpu.TextureFormatBC1RGBAUnorm, "bc1-rgba-unorm", FamilyBC},
	{wgpu.TextureFormatBC1RGBAUnormSrgb, "bc1-rgba-unorm-srgb", FamilyBC},
	{wgpu.TextureFormatBC2RGBAUnorm, "bc2-rgba-unorm", FamilyBC},
	{wgpu.TextureFormatBC2RGBAUnormSrgb, "bc2-rgba-unorm-srgb", FamilyBC},
	{wgpu.TextureFormatBC3RGBAUnorm, "bc3-rgba-unorm", FamilyBC},
	{wgpu.TextureFormatBC3RGBAUnormSrgb, "bc3-rgba-unorm-srgb", FamilyBC},
	{wgpu.TextureFormatBC4RUnorm, "bc4-r-unorm", FamilyBC},
	{wgpu.TextureFormatBC4RSnorm, "bc4-r-snorm", FamilyBC},
	{wgpu.TextureFormatBC5RGUnorm, "bc5-rg-unorm", FamilyBC},
	{wgpu.TextureFormatBC5RGSnorm, "bc5-rg-snorm", FamilyBC},
	{wgpu.TextureFormatBC6HRGBUfloat, "bc6h-rgb-ufloat", FamilyBC},
	{wgpu.TextureFormatBC6HRGBFloat, "bc6h-rgb-float", FamilyBC},
	{wgpu.TextureFormatBC7RGBAUnorm, "bc7-rgba-unorm", FamilyBC},
	{wgpu.TextureFormatBC7RGBAUnormSrgb, "bc7-rgba-unorm-srgb", FamilyBC},

	{wgpu.TextureFormatETC2RGB8Unorm, "etc2-rgb8unorm", FamilyETC2},
	{wgpu.TextureFormatETC2RGB8UnormSrgb, "etc2-rgb8unorm-srgb", FamilyETC2},
	{wgpu.TextureFormatETC2RGB8A1Unorm, "etc2-rgb8a1unorm", FamilyETC2},
	{wgpu.TextureFormatETC2RGB8A1UnormSrgb, "etc2-rgb8a1unorm-srgb", FamilyETC2},
	{wgpu.TextureFormatETC2RGBA8Unorm, "etc2-rgba8unorm", FamilyETC2},
	{wgpu.TextureFormatETC2RGBA8UnormSrgb, "etc2-rgba8unorm-srgb", FamilyETC2},
	{wgpu.TextureFormatEACR11Unorm, "eac-r11unorm", FamilyETC2},
	{wgpu.TextureFormatEACR11Snorm, "eac-r11snorm", FamilyETC2},
	{wgpu.TextureFormatEACRG11Unorm, "eac-rg11unorm", FamilyETC2},
	{wgpu.TextureFormatEACRG11Snorm, "eac-rg11snorm", FamilyETC2},
}

var (
	byName   = make(map[string]wgpu.TextureFormat, len(catalog))
	byFormat = make(map[wgpu.TextureFormat]entry, len(catalog))
)

func init() {
	for _, e := range catalog {
		byName[e.name] = e.format
		byFormat[e.format] = e
	}
}

// Name returns the canonical lowercase name of f, or "undefined" for a
// format outside the catalog.
func Name(f wgpu.TextureFormat) string {
	if e, ok := byFormat[f]; ok {
		return e.name
	}
	return "undefined"
}

// FamilyOf returns the encoding family of f, or "" for a format outside the
// catalog.
func FamilyOf(f wgpu.TextureFormat) Family {
	return byFormat[f].family
}

// Compressed reports whether f is block compressed.
func Compressed(f wgpu.TextureFormat) bool {
	fam := FamilyOf(f)
	return fam == FamilyBC || fam == FamilyETC2
}

// Formats returns every known format in catalog order.
func Formats() []wgpu.TextureFormat {
	formats := make([]wgpu.TextureFormat, len(catalog))
	for i, e := range catalog {
		formats[i] = e.format
	}
	return formats
}
