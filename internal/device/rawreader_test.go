package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRawReaderNextDecodesEveryRecordUnfiltered(t *testing.T) {
	var p [2]int
	require.NoError(t, unix.Pipe(p[:]))
	defer unix.Close(p[1])

	r := &RawReader{fd: p[0]}
	defer r.Close()

	var buf []byte
	buf = appendEventRecord(buf, evSyn, 0, 0)
	buf = appendEventRecord(buf, evKey, uint16(30), 2) // repeat, not filtered here

	_, err := unix.Write(p[1], buf)
	require.NoError(t, err)

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint16(evSyn), ev.Type)

	ev, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint16(evKey), ev.Type)
	assert.Equal(t, uint16(30), ev.Code)
	assert.Equal(t, int32(2), ev.Value)
}
