package discover

import (
	"errors"
	"os"
)

var ErrUnsupportedPlatform = errors.New("device nodes are only listed on linux")

// nodePatterns match the DRM primary and render nodes.
var nodePatterns = []string{"/dev/dri/card[0-9]*", "/dev/dri/renderD[0-9]*"}

// Device node types, spelled as in the OCI runtime spec.
const (
	NodeChar  = "c"
	NodeBlock = "b"
)

// Node is a DRM device node.
type Node struct {
	Path     string
	Type     string
	Major    uint32
	Minor    uint32
	Uid      uint32
	Gid      uint32
	FileMode os.FileMode
}
