package duaqos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonzalop/duaqos/rmw"
)

func TestLegacyGetters(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(...Option) rmw.Profile
		depth uint
	}{
		{"datum", DatumQoS, 10},
		{"command", CommandQoS, 10},
		{"scan", ScanQoS, 5},
		{"image", ImageQoS, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, keepLast(tt.depth, rmw.ReliabilityReliable, rmw.DurabilityVolatile), tt.fn())
			assert.Equal(t, tt.fn(WithDepth(tt.depth)), tt.fn())
			assert.Equal(t, keepLast(0, rmw.ReliabilityReliable, rmw.DurabilityVolatile), tt.fn(WithDepth(0)))
		})
	}
}

func TestLegacyMatchesReliable(t *testing.T) {
	for _, c := range []Category{CategoryDatum, CategoryScan, CategoryImage} {
		for _, depth := range []uint{1, 7, 42} {
			legacy := MustLookup(ClassLegacy, c, WithDepth(depth))
			current := MustLookup(ClassReliable, c, WithDepth(depth))
			assert.Equal(t, current, legacy, c.String())
		}
		assert.Equal(t, MustLookup(ClassReliable, c), MustLookup(ClassLegacy, c))
	}
	assert.Equal(t, MustLookup(ClassReliable, CategoryDatum, WithDepth(3)), CommandQoS(WithDepth(3)))
}
