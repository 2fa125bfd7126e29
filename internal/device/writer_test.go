package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/keyevent"
)

func TestAppendEventRecordLayout(t *testing.T) {
	buf := appendEventRecord(nil, evKey, uint16(keycode.A), 1)
	assert.Len(t, buf, inputEventSize)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, buf[:16])
	assert.Equal(t, evKey, int(buf[16])|int(buf[17])<<8)
	assert.Equal(t, int(keycode.A), int(buf[18])|int(buf[19])<<8)
	assert.EqualValues(t, 1, int32(uint32(buf[20])|uint32(buf[21])<<8|uint32(buf[22])<<16|uint32(buf[23])<<24))
}

func TestSendBufferEndsWithSyn(t *testing.T) {
	var buf []byte
	events := []keyevent.Event{keyevent.Pressed(keycode.A), keyevent.Released(keycode.A)}
	for _, ev := range events {
		value := int32(0)
		if ev.Pressed {
			value = 1
		}
		buf = appendEventRecord(buf, evKey, uint16(ev.Code), value)
	}
	buf = appendEventRecord(buf, evSyn, 0, 0)

	assert.Len(t, buf, inputEventSize*3)
	last := buf[len(buf)-inputEventSize:]
	assert.Equal(t, evSyn, int(last[16])|int(last[17])<<8)
	assert.Zero(t, int(last[18])|int(last[19])<<8)
}

func TestRegisterDeviceBufferShape(t *testing.T) {
	var buf []byte
	nameBytes := make([]byte, nameField)
	copy(nameBytes, deviceName)
	buf = append(buf, nameBytes...)
	buf = appendU16(buf, 3)
	buf = appendU16(buf, 1)
	buf = appendU16(buf, 1)
	buf = appendU16(buf, 1)
	buf = appendU32(buf, 0)
	for i := 0; i < 4; i++ {
		buf = append(buf, make([]byte, 64*4)...)
	}

	assert.Len(t, buf, nameField+8+4+64*4*4)
	assert.Equal(t, deviceName, string(buf[:len(deviceName)]))
	for _, b := range buf[len(deviceName):nameField] {
		assert.Zero(t, b)
	}
}
