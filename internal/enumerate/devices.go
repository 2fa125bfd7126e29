// Package enumerate discovers which /dev/input/eventN nodes are "real
// keyboards", filtering out lid/power buttons, mice, touchpads, and other
// incidental input devices exposed by the kernel.
package enumerate

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	evdev "github.com/holoplot/go-evdev"
)

// normalKeyCodes are the keys a real keyboard is expected to carry; used
// to distinguish a keyboard from an input device that merely has a
// handful of buttons (power switch, lid switch).
var normalKeyCodes = []int{
	30 /* A */, 48 /* B */, 46 /* C */, 57 /* SPACE */, 42, /* LEFTSHIFT */
	54 /* RIGHTSHIFT */, 14 /* BACKSPACE */, 28 /* ENTER */, 1, /* ESC */
	119, /* PAUSE */
}

const (
	evRel         = 0x02
	keyLED        = 0x11
	keyScrollDown = 178
)

// block is one device's raw fields from /proc/bus/input/devices.
type block struct {
	name     string
	sysfs    string
	handlers []string
	evBits   []uint64
	keyBits  []uint64
}

// Keyboard is one classified input device. Excluded devices are reported,
// not dropped, so callers can show why a device was skipped.
type Keyboard struct {
	Name     string
	Path     string
	Excluded bool
}

// List reads /proc/bus/input/devices and returns every device the
// classifier accepts as a keyboard, applying exclude (shell-glob, matched
// against the device name).
func List(excludePatterns []string) ([]Keyboard, error) {
	f, err := os.Open("/proc/bus/input/devices")
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	defer f.Close()

	globs := make([]glob.Glob, 0, len(excludePatterns))
	for _, p := range excludePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("enumerate: bad exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}

	blocks, err := parseDevicesFile(f)
	if err != nil {
		return nil, err
	}

	var out []Keyboard
	for _, b := range blocks {
		if !isKeyboard(b) {
			continue
		}
		if strings.HasPrefix(b.sysfs, "/devices/virtual") {
			continue
		}
		path, err := devPathForSysfs(b.sysfs)
		if err != nil || path == "" {
			continue
		}

		excluded := false
		for _, g := range globs {
			if g.Match(b.name) {
				excluded = true
				break
			}
		}
		if !excluded {
			excluded = !confirmsKeyCapable(path)
		}

		out = append(out, Keyboard{Name: b.name, Path: path, Excluded: excluded})
	}
	return out, nil
}

// parseDevicesFile splits /proc/bus/input/devices into per-device blocks,
// decoding the fields the classifier needs.
func parseDevicesFile(r io.Reader) ([]block, error) {
	var blocks []block
	var cur block
	haveBlock := false

	flush := func() {
		if haveBlock {
			blocks = append(blocks, cur)
		}
		cur = block{}
		haveBlock = false
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "N: Name="):
			haveBlock = true
			cur.name = strings.Trim(strings.TrimPrefix(line, "N: Name="), "\"")
		case strings.HasPrefix(line, "S: Sysfs="):
			haveBlock = true
			cur.sysfs = strings.TrimPrefix(line, "S: Sysfs=")
		case strings.HasPrefix(line, "H: Handlers="):
			haveBlock = true
			cur.handlers = strings.Fields(strings.TrimPrefix(line, "H: Handlers="))
		case strings.HasPrefix(line, "B: EV="):
			haveBlock = true
			cur.evBits = parseHexWords(strings.TrimPrefix(line, "B: EV="))
		case strings.HasPrefix(line, "B: KEY="):
			haveBlock = true
			cur.keyBits = parseHexWords(strings.TrimPrefix(line, "B: KEY="))
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("enumerate: reading device table: %w", err)
	}
	return blocks, nil
}

// parseHexWords parses a space-separated list of hex words, most
// significant word first (as the kernel prints them, one word per
// unsigned long), into a slice with the least-significant word last,
// matching the kernel's own ordering.
func parseHexWords(s string) []uint64 {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func popcount(words []uint64) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(w)
	}
	return n
}

func bitSet(words []uint64, bit int) bool {
	word := bit / 64
	// words[0] is the most-significant (highest-numbered-bit) word.
	idx := len(words) - 1 - word
	if idx < 0 || idx >= len(words) {
		return false
	}
	return words[idx]&(1<<uint(bit%64)) != 0
}

func isKeyboard(b block) bool {
	numKeys := popcount(b.keyBits)
	numNormalKeys := 0
	for _, code := range normalKeyCodes {
		if bitSet(b.keyBits, code) {
			numNormalKeys++
		}
	}
	hasRelMotion := bitSet(b.evBits, evRel)
	return numKeys >= 20 && numNormalKeys >= 3 && !hasRelMotion && !isMousey(b)
}

// isMousey reports whether a device looks more like a mouse than a
// keyboard: at least two of {has a SCROLLDOWN key, lacks the LED event
// bit, name mentions "Mouse"}.
func isMousey(b block) bool {
	signals := 0
	if bitSet(b.keyBits, keyScrollDown) {
		signals++
	}
	if !bitSet(b.evBits, keyLED) {
		signals++
	}
	if strings.Contains(b.name, "Mouse") {
		signals++
	}
	return signals >= 2
}

// devPathForSysfs resolves a device's sysfs path to its /dev/eventN node
// by finding the "event*" child and reading its uevent file's DEVNAME.
func devPathForSysfs(sysfsPath string) (string, error) {
	dir := "/sys" + sysfsPath
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "event") {
			continue
		}
		ueventPath := dir + "/" + entry.Name() + "/uevent"
		data, err := os.ReadFile(ueventPath)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			if name, ok := strings.CutPrefix(line, "DEVNAME="); ok {
				return "/dev/" + strings.TrimSpace(name), nil
			}
		}
	}
	return "", nil
}

// confirmsKeyCapable is a belt-and-suspenders check: having already
// classified the device from /proc/bus/input/devices, confirm the node
// actually advertises EV_KEY before trusting it.
func confirmsKeyCapable(path string) bool {
	dev, err := evdev.Open(path)
	if err != nil {
		return true // don't exclude solely because we couldn't double-check
	}
	defer dev.Close()
	caps := dev.CapableTypes()
	for _, t := range caps {
		if t == evdev.EV_KEY {
			return true
		}
	}
	return false
}
