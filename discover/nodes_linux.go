//go:build linux

package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// globDevices and lstat are overwritten in tests.
var (
	globDevices = filepath.Glob
	lstat       = unix.Lstat
)

var errNotDevice = errors.New("not a device")

// RenderNodes lists the DRM device nodes on the system. Paths that are not
// character or block devices are skipped.
func RenderNodes() ([]Node, error) {
	var nodes []Node
	for _, pattern := range nodePatterns {
		matches, err := globDevices(pattern)
		if err != nil {
			return nil, fmt.Errorf("discover render nodes: %w", err)
		}
		for _, m := range matches {
			node, err := nodeInfo(m)
			if errors.Is(err, errNotDevice) {
				continue
			}
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, *node)
		}
	}
	return nodes, nil
}

func nodeInfo(path string) (*Node, error) {
	var stat unix.Stat_t
	err := lstat(path, &stat)
	if err != nil {
		return nil, fmt.Errorf("node info: %w", err)
	}

	var devType string
	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFCHR:
		devType = NodeChar
	case unix.S_IFBLK:
		devType = NodeBlock
	default:
		return nil, errNotDevice
	}

	major := unix.Major(uint64(stat.Rdev))
	minor := unix.Minor(uint64(stat.Rdev))

	if major == 0xFFFFFFFF || minor == 0xFFFFFFFF {
		return nil, fmt.Errorf("node info: device in invalid state: %d,%d", major, minor)
	}

	return &Node{
		Path:     path,
		Type:     devType,
		Major:    major,
		Minor:    minor,
		Uid:      stat.Uid,
		Gid:      stat.Gid,
		FileMode: os.FileMode(stat.Mode & 0777),
	}, nil
}
