// Package systemdgen writes the files and runs the commands needed to
// make totalmapper attach to keyboards automatically via a udev rule that
// starts one instance of a systemd template unit per event device, instead
// of a user running `remap` by
// hand.
package systemdgen

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/goccy/go-json"

	"github.com/quillaja/totalmapper/internal/layout"
)

// Overridable in tests; production callers always use the defaults.
var (
	globalConfigPath = "/etc/totalmapper.json"
	udevRulePath     = "/etc/udev/rules.d/80-totalmapper.rules"
	serviceUnitPath  = "/etc/systemd/system/totalmapper@.service"

	// runCommand executes an external command, swappable in tests so
	// Install doesn't need real udevadm/systemctl binaries present.
	runCommand = func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}
)

const (
	udevRule = "KERNEL==\"event*\", ACTION==\"add\", TAG+=\"systemd\", ENV{SYSTEMD_WANTS}=\"totalmapper@%N.service\"\n"

	serviceUnit = `[Unit]
StopWhenUnneeded=true
Description=Totalmapper

[Service]
Type=simple
User=nobody
Group=input
ExecStart=/usr/bin/totalmapper remap --layout-file /etc/totalmapper.json --only-if-keyboard --dev-file /%I
`
)

// Install writes the global layout config, the udev rule, and the
// systemd instantiated unit, then refreshes both udev and systemd so the
// new rule and unit take effect immediately.
func Install(l layout.Layout) error {
	if err := writeGlobalConfig(l); err != nil {
		return err
	}
	if err := writeFile(udevRulePath, udevRule); err != nil {
		return err
	}
	if err := writeFile(serviceUnitPath, serviceUnit); err != nil {
		return err
	}
	if err := refreshUdev(); err != nil {
		return err
	}
	return refreshSystemd()
}

func writeGlobalConfig(l layout.Layout) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, layout.FormatLayout(l), "", "  "); err != nil {
		return fmt.Errorf("systemdgen: encoding layout: %w", err)
	}
	if err := os.WriteFile(globalConfigPath, pretty.Bytes(), 0o644); err != nil {
		return fmt.Errorf("systemdgen: writing %s: %w", globalConfigPath, err)
	}
	return nil
}

func writeFile(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("systemdgen: permission denied writing %s; run as root: %w", path, err)
		}
		return fmt.Errorf("systemdgen: writing %s: %w", path, err)
	}
	return nil
}

func refreshUdev() error {
	if err := runCommand("/usr/bin/udevadm", "control", "--reload"); err != nil {
		return fmt.Errorf("systemdgen: udevadm control --reload: %w", err)
	}
	if err := runCommand("/usr/bin/udevadm", "trigger"); err != nil {
		return fmt.Errorf("systemdgen: udevadm trigger: %w", err)
	}
	return nil
}

func refreshSystemd() error {
	if err := runCommand("/usr/bin/systemctl", "daemon-reload"); err != nil {
		return fmt.Errorf("systemdgen: systemctl daemon-reload: %w", err)
	}
	return nil
}
