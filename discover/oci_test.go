package discover

import (
	"os"
	"testing"

	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/stretchr/testify/assert"
)

func TestToOCI(t *testing.T) {
	nodes := []Node{
		{Path: "/dev/dri/card0", Type: NodeChar, Major: 226, Minor: 0, Gid: 44, FileMode: 0660},
		{Path: "/dev/dri/renderD128", Type: NodeChar, Major: 226, Minor: 128, Gid: 109, FileMode: 0666},
		{Path: "/dev/dri/card0", Type: NodeChar, Major: 226, Minor: 0, Gid: 44, FileMode: 0660},
	}

	got := ToOCI(nodes)

	assert.Len(t, got.Devices, 2)
	assert.Len(t, got.Allow, 2)

	dev := got.Devices[1]
	assert.Equal(t, "/dev/dri/renderD128", dev.Path)
	assert.Equal(t, "c", dev.Type)
	assert.Equal(t, int64(226), dev.Major)
	assert.Equal(t, int64(128), dev.Minor)
	assert.Equal(t, os.FileMode(0666), *dev.FileMode)
	assert.Equal(t, uint32(109), *dev.GID)
	assert.Equal(t, uint32(0), *dev.UID)

	rule := got.Allow[0]
	assert.True(t, rule.Allow)
	assert.Equal(t, "rwm", rule.Access)
	assert.Equal(t, int64(226), *rule.Major)
	assert.Equal(t, int64(0), *rule.Minor)
}

func TestToOCIBlockDevice(t *testing.T) {
	nodes := []Node{
		{Path: "/dev/dri/card0", Type: NodeChar, Major: 226, Minor: 0, FileMode: 0660},
		{Path: "/dev/dri/card1", Type: NodeBlock, Major: 226, Minor: 0, FileMode: 0660},
	}

	got := ToOCI(nodes)

	assert.Len(t, got.Devices, 2)
	assert.Equal(t, "b", got.Devices[1].Type)
	// same major:minor but a different type needs its own rule
	assert.Len(t, got.Allow, 2)
	assert.Equal(t, "c", got.Allow[0].Type)
	assert.Equal(t, "b", got.Allow[1].Type)
}

func TestToOCIEmpty(t *testing.T) {
	got := ToOCI(nil)
	assert.Equal(t, OCIDevices{Devices: []specs.LinuxDevice{}, Allow: []specs.LinuxDeviceCgroup{}}, got)
}
