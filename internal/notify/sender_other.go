//go:build !darwin && !linux && !windows

package notify

// newNativeSender returns a sender with no native tool; NewDesktopSender
// falls through to beeep or reports ErrUnavailable.
func newNativeSender() Sender {
	return unavailableSender{}
}
