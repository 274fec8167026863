package inspect

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/go-cmp/cmp"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Request
	}{
		{
			name: "no options",
			args: nil,
			want: Request{},
		},
		{
			name: "help",
			args: []string{"help", "limits"},
			want: Request{Help: true},
		},
		{
			name: "all ignores the rest",
			args: []string{"all", "bogus"},
			want: Request{Options: []Option{
				{Kind: KindFeatures, Token: "features"},
				{Kind: KindLimits, Token: "limits"},
				{Kind: KindDownlevel, Token: "downlevel"},
				{Kind: KindTexture, Token: "texture", Format: wgpu.TextureFormatRGBA8UnormSrgb},
			}},
		},
		{
			name: "keywords formats and illegal tokens keep their order",
			args: []string{"limits", "R8Unorm", "bogus", "texture", "downlevel", "astc-4x4-unorm", "features"},
			want: Request{Options: []Option{
				{Kind: KindLimits, Token: "limits"},
				{Kind: KindTexture, Token: "R8Unorm", Format: wgpu.TextureFormatR8Unorm},
				{Kind: KindIllegal, Token: "bogus"},
				{Kind: KindTexture, Token: "texture", Format: wgpu.TextureFormatRGBA8UnormSrgb},
				{Kind: KindDownlevel, Token: "downlevel"},
				{Kind: KindIllegal, Token: "astc-4x4-unorm"},
				{Kind: KindFeatures, Token: "features"},
			}},
		},
		{
			name: "help after the first token is not a keyword",
			args: []string{"features", "help"},
			want: Request{Options: []Option{
				{Kind: KindFeatures, Token: "features"},
				{Kind: KindIllegal, Token: "help"},
			}},
		},
		{
			name: "keywords are case sensitive",
			args: []string{"LIMITS"},
			want: Request{Options: []Option{
				{Kind: KindIllegal, Token: "LIMITS"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRequest(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRequest(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}
