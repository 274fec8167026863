package format

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// astcPrefix starts the ASTC family names, e.g. "astc-4x4-unorm". Their block
// size and channel encoding are part of the name and are not parsed yet.
const astcPrefix = "astc-"

// Lookup resolves a format name to its wgpu texture format, ignoring case. Surrounding whitespace is
// not trimmed. The boolean is false when the name is not a known format.
func Lookup(name string) (wgpu.TextureFormat, bool) {
	key := strings.ToLower(name)
	if IsReservedFamily(key) {
		return lookupASTC(key)
	}
	f, ok := byName[key]
	return f, ok
}

// IsReservedFamily reports whether name belongs to a format family whose
// names are recognized but not resolved.
func IsReservedFamily(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), astcPrefix)
}

// lookupASTC always reports not found.
// TODO: parse the block dimensions and unorm/unorm-srgb channel suffix.
func lookupASTC(string) (wgpu.TextureFormat, bool) {
	return wgpu.TextureFormatUndefined, false
}
