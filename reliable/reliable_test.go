package reliable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonzalop/duaqos"
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
			got := tt.fn()
			assert.Equal(t, rmw.NewProfile(rmw.KeepLast(tt.depth)).Reliable().DurabilityVolatile(), got)
			assert.Equal(t, got, tt.fn(duaqos.WithDepth(tt.depth)))

			for _, d := range []uint{0, 2, 64} {
				p := tt.fn(duaqos.WithDepth(d))
				assert.Equal(t, rmw.HistoryKeepLast, p.History)
				assert.Equal(t, d, p.Depth)
				assert.Equal(t, rmw.ReliabilityReliable, p.Reliability)
				assert.Equal(t, rmw.DurabilityVolatile, p.Durability)
			}
		})
	}
}

func TestFreshValues(t *testing.T) {
	a := DatumQoS().BestEffort()
	b := DatumQoS()
	assert.Equal(t, rmw.ReliabilityBestEffort, a.Reliability)
	assert.Equal(t, rmw.ReliabilityReliable, b.Reliability)
	assert.Equal(t, rmw.ReliabilityReliable, DatumQoS().Reliability)
}

func ExampleScanQoS() {
	fmt.Println(ScanQoS())
	fmt.Println(ScanQoS(duaqos.WithDepth(20)))

	// Output:
	// {history: keep_last(5), reliability: reliable, durability: volatile}
	// {history: keep_last(20), reliability: reliable, durability: volatile}
}
