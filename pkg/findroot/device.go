package findroot

// DeviceID identifies the storage volume backing a path. Values are opaque
// and support equality only; no ordering is implied.
type DeviceID uint64

// deviceOf queries the device backing a path. It is a variable so tests can
// substitute a fake and simulate mount boundaries.
var deviceOf = statDevice

// DeviceOf returns the identifier of the device containing path. On
// platforms without a usable device concept it returns a constant sentinel
// for every path and never fails.
func DeviceOf(path string) (DeviceID, error) {
	return deviceOf(path)
}

// DeviceCheckSupported reports whether filesystem-boundary detection is
// meaningful on this platform. When it is false every search behaves as if
// Options.SpanFileSystems were set.
func DeviceCheckSupported() bool {
	return deviceCheckSupported
}
