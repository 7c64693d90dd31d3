package besteffort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/reliable"
	"github.com/gonzalop/duaqos/rmw"
)

func TestGetters(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(...duaqos.Option) rmw.Profile
		depth uint
	}{
		{"datum", DatumQoS, 10},
		{"scan", ScanQoS, 5},
		{"image", ImageQoS, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, rmw.NewProfile(rmw.KeepLast(tt.depth)).BestEffort().DurabilityVolatile(), tt.fn())

			for _, d := range []uint{0, 3, 128} {
				p := tt.fn(duaqos.WithDepth(d))
				assert.Equal(t, rmw.HistoryKeepLast, p.History)
				assert.Equal(t, d, p.Depth)
				assert.Equal(t, rmw.ReliabilityBestEffort, p.Reliability)
				assert.Equal(t, rmw.DurabilityVolatile, p.Durability)
			}
		})
	}
}

func TestOnlyReliabilityDiffersFromReliable(t *testing.T) {
	assert.Equal(t, reliable.DatumQoS().BestEffort(), DatumQoS())
	assert.Equal(t, reliable.ScanQoS().BestEffort(), ScanQoS())
	assert.Equal(t, reliable.ImageQoS().BestEffort(), ImageQoS())
}
