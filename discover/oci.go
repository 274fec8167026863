package discover

import (
	"fmt"

	"github.com/opencontainers/runtime-spec/specs-go"
)

// OCIDevices is the part of an OCI runtime spec that exposes device nodes
// to a container.
type OCIDevices struct {
	Devices []specs.LinuxDevice       `json:"devices"`
	Allow   []specs.LinuxDeviceCgroup `json:"allow"`
}

// ToOCI converts nodes to container device entries and cgroup allow rules.
// Duplicate paths and duplicate type, major and minor triples are added once.
func ToOCI(nodes []Node) OCIDevices {
	out := OCIDevices{
		Devices: []specs.LinuxDevice{},
		Allow:   []specs.LinuxDeviceCgroup{},
	}

	paths := make(map[string]struct{})
	rules := make(map[string]struct{})
	for _, n := range nodes {
		if _, ok := paths[n.Path]; !ok {
			paths[n.Path] = struct{}{}
			mode := n.FileMode
			uid, gid := n.Uid, n.Gid
			out.Devices = append(out.Devices, specs.LinuxDevice{
				Type:     n.Type,
				Major:    int64(n.Major),
				Minor:    int64(n.Minor),
				FileMode: &mode,
				Path:     n.Path,
				UID:      &uid,
				GID:      &gid,
			})
		}

		k := fmt.Sprintf("%s-%d-%d", n.Type, n.Major, n.Minor)
		if _, ok := rules[k]; ok {
			continue
		}
		rules[k] = struct{}{}
		major := int64(n.Major)
		minor := int64(n.Minor)
		out.Allow = append(out.Allow, specs.LinuxDeviceCgroup{
			Allow:  true,
			Type:   n.Type,
			Major:  &major,
			Minor:  &minor,
			Access: "rwm",
		})
	}
	return out
}
