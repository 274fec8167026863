//go:build !linux

package discover

// RenderNodes is not supported outside linux.
func RenderNodes() ([]Node, error) {
	return nil, ErrUnsupportedPlatform
}
