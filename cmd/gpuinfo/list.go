package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gpu-tools/gpuinfo/discover"
	"github.com/gpu-tools/gpuinfo/format"
)

// renderNodes is overwritten in tests.
var renderNodes = discover.RenderNodes

func listFormats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range format.Formats() {
		fmt.Fprintf(tw, "%s\t%s\n", format.Name(f), format.FamilyOf(f))
	}
	fmt.Fprintln(tw, "astc-*\treserved, not yet supported")
	return tw.Flush()
}

func listNodes(w io.Writer, oci bool) error {
	nodes, err := renderNodes()
	if err != nil {
		return fmt.Errorf("listing device nodes: %w", err)
	}

	if oci {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(discover.ToOCI(nodes))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, n := range nodes {
		fmt.Fprintf(tw, "%s\t%d:%d\t%d:%d\t%#o\n", n.Path, n.Major, n.Minor, n.Uid, n.Gid, uint32(n.FileMode))
	}
	return tw.Flush()
}
