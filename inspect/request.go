// Package inspect turns command line options into per-adapter capability
// reports and renders them.
package inspect

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gpu-tools/gpuinfo/format"
)

// Kind is what an option asks to print.
type Kind int

const (
	KindIllegal Kind = iota
	KindFeatures
	KindLimits
	KindDownlevel
	KindTexture
)

const (
	KeywordHelp      = "help"
	KeywordAll       = "all"
	KeywordFeatures  = "features"
	KeywordLimits    = "limits"
	KeywordDownlevel = "downlevel"
	KeywordTexture   = "texture"
)

// RepresentativeFormat is queried by the texture keyword and by all.
const RepresentativeFormat = wgpu.TextureFormatRGBA8UnormSrgb

var keywords = map[string]Kind{
	KeywordFeatures:  KindFeatures,
	KeywordLimits:    KindLimits,
	KeywordDownlevel: KindDownlevel,
}

// Keywords describes the accepted options, in display order.
var Keywords = []struct{ Name, Usage string }{
	{KeywordFeatures, "print adapter features"},
	{KeywordLimits, "print adapter limits"},
	{KeywordDownlevel, "print how the adapter compares to the WebGPU baseline"},
	{KeywordTexture, "print texture format support for " + format.Name(RepresentativeFormat)},
	{"<format>", "print texture format support for a format name, e.g. r8unorm"},
	{KeywordAll, "print all of the above"},
	{KeywordHelp, "print this list"},
}

// Option is one parsed command line token.
type Option struct {
	Kind   Kind
	Token  string
	Format wgpu.TextureFormat
}

// Request is the parsed option list.
type Request struct {
	Help    bool
	Options []Option
}

// ParseRequest classifies each token. A leading "help" or "all" decides the
// whole request. Other tokens are tried as keywords, then as format names;
// anything else becomes an illegal option and parsing continues.
func ParseRequest(args []string) Request {
	if len(args) > 0 {
		switch args[0] {
		case KeywordHelp:
			return Request{Help: true}
		case KeywordAll:
			return Request{Options: []Option{
				{Kind: KindFeatures, Token: KeywordFeatures},
				{Kind: KindLimits, Token: KeywordLimits},
				{Kind: KindDownlevel, Token: KeywordDownlevel},
				{Kind: KindTexture, Token: KeywordTexture, Format: RepresentativeFormat},
			}}
		}
	}

	var req Request
	for _, arg := range args {
		req.Options = append(req.Options, parseOption(arg))
	}
	return req
}

func parseOption(token string) Option {
	if kind, ok := keywords[token]; ok {
		return Option{Kind: kind, Token: token}
	}
	if token == KeywordTexture {
		return Option{Kind: KindTexture, Token: token, Format: RepresentativeFormat}
	}
	if f, ok := format.Lookup(token); ok {
		return Option{Kind: KindTexture, Token: token, Format: f}
	}
	return Option{Kind: KindIllegal, Token: token}
}
