package sys

import (
	"fmt"

	"github.com/coreos/go-systemd/v22/daemon"
)

// NotifyReady tells the service manager that the server is accepting
// connections. Without NOTIFY_SOCKET in the environment it does nothing and
// reports false.
func NotifyReady() (bool, error) {
	return notify(daemon.SdNotifyReady)
}

// NotifyStopping tells the service manager a graceful stop has begun.
func NotifyStopping() (bool, error) {
	return notify(daemon.SdNotifyStopping)
}

func notify(state string) (bool, error) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		return sent, fmt.Errorf("error sending %q to service manager: %w", state, err)
	}
	return sent, nil
}
