package enumerate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample /proc/bus/input/devices text: a real keyboard, a mouse, and a
// virtual power button, formatted the way the kernel prints them.
const sampleDevicesText = `I: Bus=0011 Vendor=0001 Product=0001 Version=ab83
N: Name="AT Translated Set 2 keyboard"
P: Phys=isa0060/serio0/input0
S: Sysfs=/devices/platform/i8042/serio0/input/input0
U: Uniq=
H: Handlers=sysrq kbd event0
B: PROP=0
B: EV=120013
B: KEY=402000000 3803078f800d001 feffffdfffefffff fffffffffffffffe
B: MSC=10

I: Bus=0003 Vendor=046d Product=c52b Version=0111
N: Name="Logitech USB Mouse"
P: Phys=usb-0000:00:14.0-1/input0
S: Sysfs=/devices/pci0000:00/0000:00:14.0/usb1/1-1/1-1:1.0/0003:046D:C52B.0001/input/input1
U: Uniq=
H: Handlers=mouse0 event1
B: PROP=0
B: EV=17
B: KEY=70000 0 0 0 0
B: REL=903
B: MSC=10

I: Bus=0019 Vendor=0000 Product=0006 Version=0000
N: Name="Power Button"
P: Phys=LNXPWRBN/button/input0
S: Sysfs=/devices/virtual/input/input2
U: Uniq=
H: Handlers=kbd event2
B: PROP=0
B: EV=3
B: KEY=100000 0 0 0
`

func TestParseDevicesFile(t *testing.T) {
	blocks, err := parseDevicesFile(strings.NewReader(sampleDevicesText))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, "AT Translated Set 2 keyboard", blocks[0].name)
	assert.Equal(t, "/devices/platform/i8042/serio0/input/input0", blocks[0].sysfs)

	assert.Equal(t, "Logitech USB Mouse", blocks[1].name)
	assert.Equal(t, "Power Button", blocks[2].name)
	assert.Equal(t, "/devices/virtual/input/input2", blocks[2].sysfs)
}

func TestIsKeyboardClassifiesRealKeyboard(t *testing.T) {
	blocks, err := parseDevicesFile(strings.NewReader(sampleDevicesText))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.True(t, isKeyboard(blocks[0]), "AT keyboard should classify as a keyboard")
	assert.False(t, isKeyboard(blocks[1]), "mouse should not classify as a keyboard")
	assert.False(t, isKeyboard(blocks[2]), "power button lacks enough normal keys")
}

func TestVirtualSysfsExcluded(t *testing.T) {
	blocks, err := parseDevicesFile(strings.NewReader(sampleDevicesText))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(blocks[2].sysfs, "/devices/virtual"))
}

func TestParseHexWordsOrdering(t *testing.T) {
	// kernel prints most-significant word first; "3 40" is two 64-bit
	// words, so bit 64 (in the high word) and bit 6 (0x40, in the low
	// word) should both resolve correctly.
	words := parseHexWords("3 40")
	assert.True(t, bitSet(words, 6))  // low word 0x40 = bit 6
	assert.False(t, bitSet(words, 1)) // bit 1 not in 0x40
	assert.True(t, bitSet(words, 64)) // high word 3 = bits 64,65
	assert.True(t, bitSet(words, 65))
}

func TestPopcount(t *testing.T) {
	assert.Equal(t, 0, popcount(nil))
	assert.Equal(t, 2, popcount([]uint64{0x3}))
	assert.Equal(t, 8, popcount([]uint64{0xff, 0x0}))
}

func TestIsMouseyRequiresTwoSignals(t *testing.T) {
	// name alone isn't enough.
	b := block{name: "Some Mouse Thing", evBits: []uint64{1<<17 | 1}}
	assert.False(t, isMousey(b))

	// name + missing LED bit is enough.
	b2 := block{name: "Some Mouse Thing", evBits: []uint64{1}}
	assert.True(t, isMousey(b2))

	// SCROLLDOWN key (178) alone isn't enough.
	b3 := block{keyBits: []uint64{1 << 50, 0, 0}, evBits: []uint64{1<<17 | 1}}
	assert.False(t, isMousey(b3))

	// SCROLLDOWN key + missing LED bit is enough.
	b4 := block{keyBits: []uint64{1 << 50, 0, 0}, evBits: []uint64{1}}
	assert.True(t, isMousey(b4))
}
