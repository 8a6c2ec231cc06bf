package dat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLPTable_SpecifiedValues(t *testing.T) {
	assert.Equal(t, int16(0), lpTable[0])
	assert.Equal(t, int16(32704), lpTable[2047])
	assert.Equal(t, int16(-32768), lpTable[2048])
	assert.Equal(t, int16(-1), lpTable[4095])
}

func TestLPTable_MonotonicWithinEachHalf(t *testing.T) {
	for i := 1; i < 2048; i++ {
		assert.GreaterOrEqualf(t, lpTable[i], lpTable[i-1], "table not monotonic at %d", i)
	}
	for i := 2049; i < 4096; i++ {
		assert.GreaterOrEqualf(t, lpTable[i], lpTable[i-1], "table not monotonic at %d", i)
	}
}

func TestLPPerm_IsBijection(t *testing.T) {
	var seen = make([]bool, len(lpPerm))
	for _, v := range lpPerm {
		var target = int(v)
		assert.Falsef(t, seen[target], "permutation target %d visited twice", target)
		seen[target] = true
	}
	for i, s := range seen {
		assert.Truef(t, s, "permutation target %d never visited", i)
	}
}
