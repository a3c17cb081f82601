package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) (samples int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		samples += n
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return samples, peak
}

func TestCues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (beep.Streamer, error)
		dur   time.Duration
	}{
		{name: "explosion", build: Explosion, dur: 400 * time.Millisecond},
		{name: "fanfare", build: Fanfare, dur: 500 * time.Millisecond},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			s, err := test.build()
			require.NoError(t, err)

			n, peak := drain(t, s)
			assert.InDelta(t, SampleRate.N(test.dur), n, 5)
			assert.Greater(t, peak, 0.5)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestSilent(t *testing.T) {
	p := Silent()
	assert.NotPanics(t, func() {
		p.Explode()
		p.Win()
		p.Close()
	})
}
