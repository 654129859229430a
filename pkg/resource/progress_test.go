package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressAccounting(t *testing.T) {
	var lastTransferred, lastTotal int64
	p := NewProgress(func(transferred, total int64) {
		lastTransferred = transferred
		lastTotal = total
	})

	assert.Equal(t, TotalUnknown, p.Total())
	assert.Zero(t, p.Transferred())

	p.SetTotal(10)
	p.Add(4)
	p.Add(6)

	assert.Equal(t, int64(10), p.Transferred())
	assert.Equal(t, int64(10), lastTransferred)
	assert.Equal(t, int64(10), lastTotal)
}

func TestProgressReset(t *testing.T) {
	p := NewProgress(nil)
	p.SetTotal(100)
	p.Add(42)

	p.Reset()

	assert.Equal(t, TotalUnknown, p.Total())
	assert.Zero(t, p.Transferred())
}

func TestProgressWriter(t *testing.T) {
	p := NewProgress(nil)
	w := &progressWriter{progress: p}

	n, err := w.Write([]byte("XYZ"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int64(3), p.Transferred())
}
