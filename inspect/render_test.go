package inspect

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/gpu-tools/gpuinfo/capability"
	"github.com/gpu-tools/gpuinfo/discover"
)

type fakeAdapter struct {
	info         discover.Info
	features     capability.FeatureSet
	limits       []capability.Limit
	featureCalls int
	limitsCalls  int
}

func (f *fakeAdapter) Info() discover.Info { return f.info }

func (f *fakeAdapter) Features() capability.FeatureSet {
	f.featureCalls++
	return f.features
}

func (f *fakeAdapter) Limits() []capability.Limit {
	f.limitsCalls++
	return f.limits
}

func (f *fakeAdapter) Release() {}

func newFakeAdapter(name string) *fakeAdapter {
	return &fakeAdapter{
		info: discover.Info{
			Name:       name,
			VendorName: "nvidia",
			Vendor:     0x10de,
			Device:     0x2206,
			Type:       "discrete-gpu",
			Backend:    "vulkan",
		},
		features: capability.NewFeatureSet(capability.FeatureTextureCompressionBC),
		limits: []capability.Limit{
			{Name: "maxTextureDimension2D", Value: 8192},
			{Name: "maxBindGroups", Value: 4},
		},
	}
}

func renderText(t *testing.T, reports []AdapterReport) string {
	t.Helper()
	var buf bytes.Buffer
	if err := (TextRenderer{Profile: termenv.Ascii}).Render(&buf, reports); err != nil {
		t.Fatalf("Render() err=%q, want nil", err)
	}
	return buf.String()
}

func TestTextLimitsFormatAndIllegalOption(t *testing.T) {
	adapters := []discover.Adapter{newFakeAdapter("GPU A"), newFakeAdapter("GPU B")}
	reports := Build(adapters, ParseRequest([]string{"limits", "r8unorm", "bogus"}))

	block := func(index, name string) string {
		return "Adapter " + index + "\n" +
			"  Name     " + name + "\n" +
			"  Vendor   0x10de nvidia\n" +
			"  Device   0x2206\n" +
			"  Type     discrete-gpu\n" +
			"  Backend  vulkan\n" +
			"Limits\n" +
			"  maxTextureDimension2D  8192\n" +
			"  maxBindGroups          4\n" +
			"r8unorm: usages=COPY_SRC|COPY_DST|TEXTURE_BINDING|RENDER_ATTACHMENT flags=FILTERABLE|BLENDABLE|MULTISAMPLE_X4|MULTISAMPLE_RESOLVE\n" +
			"option bogus is not legal\n" +
			"\n"
	}
	want := block("0", "GPU A") + block("1", "GPU B")

	if diff := cmp.Diff(want, renderText(t, reports)); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextAll(t *testing.T) {
	a := newFakeAdapter("GPU A")
	a.limits = append(a.limits, capability.Limit{Name: "maxPushConstantSize", Value: math.MaxUint32, Undefined: true})
	reports := Build([]discover.Adapter{a}, ParseRequest([]string{"all"}))
	got := renderText(t, reports)

	for _, want := range []string{
		"Features\n  texture-compression-bc\n",
		"Limits\n  maxTextureDimension2D  8192\n",
		"maxPushConstantSize    undefined\n",
		"Downlevel\n  Compliant       true\n  ComputeShaders  false\n",
		"rgba8unorm-srgb: usages=",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTextDownlevelShortfalls(t *testing.T) {
	a := newFakeAdapter("GPU A")
	a.limits = []capability.Limit{
		{Name: "maxBindGroups", Value: 2},
		{Name: "minUniformBufferOffsetAlignment", Value: 512},
	}
	got := renderText(t, Build([]discover.Adapter{a}, ParseRequest([]string{"downlevel"})))

	want := "Downlevel\n" +
		"  Compliant                        false\n" +
		"  ComputeShaders                   false\n" +
		"  maxBindGroups                    2 < 4\n" +
		"  minUniformBufferOffsetAlignment  512 > 256\n"
	if !strings.Contains(got, want) {
		t.Errorf("output missing shortfalls:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextNoFeatures(t *testing.T) {
	a := newFakeAdapter("GPU A")
	a.features = capability.NewFeatureSet()
	got := renderText(t, Build([]discover.Adapter{a}, ParseRequest([]string{"features"})))
	if !strings.Contains(got, "Features\n  none\n") {
		t.Errorf("output missing empty feature list:\n%s", got)
	}
}

func TestBuildQueriesAdapterOnce(t *testing.T) {
	a := newFakeAdapter("GPU A")
	Build([]discover.Adapter{a}, ParseRequest([]string{"features", "limits", "downlevel", "r8unorm", "bc1-rgba-unorm"}))
	if a.featureCalls != 1 || a.limitsCalls != 1 {
		t.Errorf("got %d feature and %d limits calls, want 1 each", a.featureCalls, a.limitsCalls)
	}
}

func TestBuildInfoOnly(t *testing.T) {
	a := newFakeAdapter("GPU A")
	reports := Build([]discover.Adapter{a}, ParseRequest(nil))
	if len(reports) != 1 || len(reports[0].Sections) != 0 {
		t.Fatalf("got %+v, want one report without sections", reports)
	}
	if a.featureCalls != 0 || a.limitsCalls != 0 {
		t.Error("info-only request queried features or limits")
	}
}

func TestJSONRenderer(t *testing.T) {
	reports := Build([]discover.Adapter{newFakeAdapter("GPU A")}, ParseRequest([]string{"bc1-rgba-unorm", "nope"}))

	var buf bytes.Buffer
	if err := (JSONRenderer{}).Render(&buf, reports); err != nil {
		t.Fatalf("Render() err=%q, want nil", err)
	}

	var got []struct {
		Index    int
		Info     discover.Info
		Sections []struct {
			Option  string
			Illegal bool
			Texture *struct {
				Format string
				Usages string
				Flags  string
			}
		}
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || len(got[0].Sections) != 2 {
		t.Fatalf("got %+v, want one adapter with two sections", got)
	}
	if got[0].Info.Name != "GPU A" {
		t.Errorf("got name %q, want %q", got[0].Info.Name, "GPU A")
	}
	tex := got[0].Sections[0].Texture
	if tex == nil || tex.Format != "bc1-rgba-unorm" || tex.Usages != "COPY_SRC|COPY_DST|TEXTURE_BINDING" {
		t.Errorf("got texture %+v", tex)
	}
	if !got[0].Sections[1].Illegal || got[0].Sections[1].Option != "nope" {
		t.Errorf("got section %+v, want illegal nope", got[0].Sections[1])
	}
}

func TestTOMLRenderer(t *testing.T) {
	a := newFakeAdapter("GPU A")
	a.limits = append(a.limits, capability.Limit{Name: "maxBufferSize", Value: math.MaxUint64, Undefined: true})
	reports := Build([]discover.Adapter{a}, ParseRequest([]string{"limits", "downlevel"}))

	var buf bytes.Buffer
	if err := (TOMLRenderer{}).Render(&buf, reports); err != nil {
		t.Fatalf("Render() err=%q, want nil", err)
	}

	var got struct {
		Adapters []struct {
			Index    int
			Info     discover.Info
			Sections []struct {
				Option string
				Limits []capability.Limit
			}
		}
	}
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("invalid toml: %v\n%s", err, buf.String())
	}
	if len(got.Adapters) != 1 || got.Adapters[0].Info.Backend != "vulkan" {
		t.Fatalf("got %+v", got)
	}
	limits := got.Adapters[0].Sections[0].Limits
	want := []capability.Limit{
		{Name: "maxTextureDimension2D", Value: 8192},
		{Name: "maxBindGroups", Value: 4},
		{Name: "maxBufferSize", Value: 0, Undefined: true},
	}
	if diff := cmp.Diff(want, limits); diff != "" {
		t.Errorf("limits mismatch (-want +got):\n%s", diff)
	}
	if reports[0].Sections[0].Limits[2].Value != math.MaxUint64 {
		t.Error("TOML rendering modified the source report")
	}
}

func TestNewRenderer(t *testing.T) {
	for _, name := range []string{"", "text", "json", "toml"} {
		if _, err := NewRenderer(name, termenv.Ascii); err != nil {
			t.Errorf("NewRenderer(%q) err=%q, want nil", name, err)
		}
	}
	if _, err := NewRenderer("yaml", termenv.Ascii); err == nil {
		t.Error("NewRenderer(yaml) err=nil, want error")
	}
}
