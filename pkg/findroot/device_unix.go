//go:build unix

package findroot

import (
	"golang.org/x/sys/unix"

	vcserrors "thoreinstein.com/vcsroot/pkg/errors"
)

const deviceCheckSupported = true

// statDevice reads the device number from the path's stat metadata.
func statDevice(path string) (DeviceID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, vcserrors.NewStatError(path, err)
	}
	return DeviceID(st.Dev), nil
}
