package inspect

import (
	"github.com/gpu-tools/gpuinfo/capability"
	"github.com/gpu-tools/gpuinfo/discover"
	"github.com/gpu-tools/gpuinfo/format"
)

// TextureReport pairs a format with what the adapter supports for it.
type TextureReport struct {
	Format   string                           `json:"format" toml:"format"`
	Features capability.TextureFormatFeatures `json:"-" toml:"-"`
	Usages   string                           `json:"usages" toml:"usages"`
	Flags    string                           `json:"flags" toml:"flags"`
}

// Section is the answer to one option. Exactly one of the payload fields is
// set, or Illegal names the rejected token.
type Section struct {
	Option    string                `json:"option" toml:"option"`
	Features  []capability.Feature  `json:"features,omitempty" toml:"features,omitempty"`
	Limits    []capability.Limit    `json:"limits,omitempty" toml:"limits,omitempty"`
	Downlevel *capability.Downlevel `json:"downlevel,omitempty" toml:"downlevel,omitempty"`
	Texture   *TextureReport        `json:"texture,omitempty" toml:"texture,omitempty"`
	Illegal   bool                  `json:"illegal,omitempty" toml:"illegal,omitempty"`

	kind Kind
}

// AdapterReport is everything printed for one adapter.
type AdapterReport struct {
	Index    int           `json:"index" toml:"index"`
	Info     discover.Info `json:"info" toml:"info"`
	Sections []Section     `json:"sections,omitempty" toml:"sections,omitempty"`
}

// Build queries every adapter for the requested options. Reports follow
// adapter order and sections follow option order.
func Build(adapters []discover.Adapter, req Request) []AdapterReport {
	reports := make([]AdapterReport, 0, len(adapters))
	for i, a := range adapters {
		reports = append(reports, buildReport(i, a, req.Options))
	}
	return reports
}

func buildReport(index int, a discover.Adapter, options []Option) AdapterReport {
	report := AdapterReport{Index: index, Info: a.Info()}

	// features and limits are fetched at most once per adapter
	var (
		features    capability.FeatureSet
		haveFeature bool
		limits      []capability.Limit
		haveLimits  bool
	)
	getFeatures := func() capability.FeatureSet {
		if !haveFeature {
			features, haveFeature = a.Features(), true
		}
		return features
	}
	getLimits := func() []capability.Limit {
		if !haveLimits {
			limits, haveLimits = a.Limits(), true
		}
		return limits
	}

	for _, opt := range options {
		s := Section{Option: opt.Token, kind: opt.Kind}
		switch opt.Kind {
		case KindFeatures:
			s.Features = getFeatures().List()
		case KindLimits:
			s.Limits = getLimits()
		case KindDownlevel:
			d := capability.EvaluateDownlevel(getLimits())
			s.Downlevel = &d
		case KindTexture:
			tf := capability.FormatFeatures(opt.Format, getFeatures())
			s.Texture = &TextureReport{
				Format:   format.Name(opt.Format),
				Features: tf,
				Usages:   tf.AllowedUsages.String(),
				Flags:    tf.Flags.String(),
			}
		default:
			s.Illegal = true
		}
		report.Sections = append(report.Sections, s)
	}
	return report
}
