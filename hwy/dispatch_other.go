//go:build !amd64 && !arm64

package hwy

// Other architectures run in scalar mode.
func detectCPUFeatures() { setScalarMode() }

func hasLevel(DispatchLevel) bool { return false }
