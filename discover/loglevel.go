package discover

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// EnvWGPULogLevel selects the verbosity of the native wgpu logger.
const EnvWGPULogLevel = "WGPU_LOG_LEVEL"

var wgpuLogLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

// SetLogLevel sets the native wgpu log level by name. Unknown names are
// ignored and reported as false.
func SetLogLevel(level string) bool {
	l, ok := wgpuLogLevels[strings.ToUpper(level)]
	if !ok {
		return false
	}
	wgpu.SetLogLevel(l)
	return true
}
