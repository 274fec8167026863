package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/muesli/termenv"

	"github.com/gpu-tools/gpuinfo/capability"
)

// Renderer writes adapter reports.
type Renderer interface {
	Render(w io.Writer, reports []AdapterReport) error
}

// NewRenderer returns the renderer for an output name: "text", "json" or
// "toml". profile only affects text output.
func NewRenderer(output string, profile termenv.Profile) (Renderer, error) {
	switch output {
	case "", "text":
		return TextRenderer{Profile: profile}, nil
	case "json":
		return JSONRenderer{}, nil
	case "toml":
		return TOMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output %q", output)
	}
}

// TextRenderer prints one block per adapter followed by one block per
// option, in option order.
type TextRenderer struct {
	Profile termenv.Profile
}

func (r TextRenderer) Render(w io.Writer, reports []AdapterReport) error {
	out := termenv.NewOutput(w, termenv.WithProfile(r.Profile))
	for _, report := range reports {
		if err := r.renderReport(w, out, report); err != nil {
			return err
		}
	}
	return nil
}

func (r TextRenderer) header(out *termenv.Output, s string) string {
	return out.String(s).Bold().String()
}

func (r TextRenderer) renderReport(w io.Writer, out *termenv.Output, report AdapterReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	info := report.Info

	fmt.Fprintf(tw, "%s\n", r.header(out, fmt.Sprintf("Adapter %d", report.Index)))
	fmt.Fprintf(tw, "  Name\t%s\n", info.Name)
	fmt.Fprintf(tw, "  Vendor\t0x%04x %s\n", info.Vendor, info.VendorName)
	fmt.Fprintf(tw, "  Device\t0x%04x\n", info.Device)
	fmt.Fprintf(tw, "  Type\t%s\n", info.Type)
	fmt.Fprintf(tw, "  Backend\t%s\n", info.Backend)
	if info.Architecture != "" {
		fmt.Fprintf(tw, "  Architecture\t%s\n", info.Architecture)
	}
	if info.Driver != "" {
		fmt.Fprintf(tw, "  Driver\t%s\n", info.Driver)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range report.Sections {
		if err := r.renderSection(w, out, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (r TextRenderer) renderSection(w io.Writer, out *termenv.Output, s Section) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch s.kind {
	case KindFeatures:
		fmt.Fprintf(tw, "%s\n", r.header(out, "Features"))
		if len(s.Features) == 0 {
			fmt.Fprintln(tw, "  none")
		}
		for _, f := range s.Features {
			fmt.Fprintf(tw, "  %s\n", f)
		}
	case KindLimits:
		fmt.Fprintf(tw, "%s\n", r.header(out, "Limits"))
		for _, l := range s.Limits {
			fmt.Fprintf(tw, "  %s\t%s\n", l.Name, limitValue(l))
		}
	case KindDownlevel:
		d := s.Downlevel
		fmt.Fprintf(tw, "%s\n", r.header(out, "Downlevel"))
		fmt.Fprintf(tw, "  Compliant\t%t\n", d.Compliant)
		fmt.Fprintf(tw, "  ComputeShaders\t%t\n", d.ComputeShaders)
		for _, sf := range d.Shortfalls {
			fmt.Fprintf(tw, "  %s\t%d %s %d\n", sf.Limit, sf.Have, sf.Op(), sf.Want)
		}
	case KindTexture:
		fmt.Fprintf(tw, "%s: %s\n", s.Texture.Format, s.Texture.Features)
	default:
		fmt.Fprintf(tw, "option %s is not legal\n", s.Option)
	}
	return tw.Flush()
}

func limitValue(l capability.Limit) string {
	if l.Undefined {
		return "undefined"
	}
	return fmt.Sprintf("%d", l.Value)
}

// JSONRenderer writes the reports as an indented JSON array.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, reports []AdapterReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// TOMLRenderer writes the reports as an array of adapter tables.
type TOMLRenderer struct{}

func (TOMLRenderer) Render(w io.Writer, reports []AdapterReport) error {
	doc := struct {
		Adapters []AdapterReport `toml:"adapters"`
	}{Adapters: tomlSafe(reports)}
	return toml.NewEncoder(w).Encode(doc)
}

// tomlSafe zeroes undefined limits. TOML integers are signed 64 bit and the
// all-ones marker does not fit.
func tomlSafe(reports []AdapterReport) []AdapterReport {
	out := make([]AdapterReport, len(reports))
	for i, report := range reports {
		out[i] = report
		out[i].Sections = make([]Section, len(report.Sections))
		for j, s := range report.Sections {
			if s.Limits != nil {
				limits := make([]capability.Limit, len(s.Limits))
				for k, l := range s.Limits {
					if l.Undefined {
						l.Value = 0
					}
					limits[k] = l
				}
				s.Limits = limits
			}
			out[i].Sections[j] = s
		}
	}
	return out
}
