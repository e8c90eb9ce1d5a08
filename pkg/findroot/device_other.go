//go:build !unix

package findroot

const deviceCheckSupported = false

// statDevice is a stub on platforms without stable device numbers.
// Every path reports device zero, so no boundary is ever detected.
func statDevice(path string) (DeviceID, error) {
	return 0, nil
}
