package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestAttenuateGain(t *testing.T) {
	v := Attenuate(nil, DefaultVolume)
	if v.Silent {
		t.Fatal("expected audible volume")
	}
	if got := math.Pow(v.Base, v.Volume); math.Abs(got-DefaultVolume) > 1e-9 {
		t.Errorf("linear gain = %f, want %f", got, DefaultVolume)
	}

	if v := Attenuate(nil, 0); !v.Silent {
		t.Error("zero gain should be silent")
	}
	if v := Attenuate(nil, 3); v.Volume != 0 {
		t.Errorf("gain above 1 should clamp to unity, got volume %f", v.Volume)
	}
}

func TestAmbienceLoopsAndStaysInRange(t *testing.T) {
	s, err := Ambience()
	if err != nil {
		t.Fatalf("Ambience: %v", err)
	}
	total := sampleRate.N(ambienceLength) + 1000
	buf := make([][2]float64, 512)
	peak := 0.0
	for read := 0; read < total; {
		n, ok := s.Stream(buf)
		if !ok || n == 0 {
			t.Fatalf("stream ended after %d samples", read)
		}
		for _, smp := range buf[:n] {
			if smp[0] < -1 || smp[0] > 1 {
				t.Fatalf("sample out of range: %f", smp[0])
			}
			peak = max(peak, math.Abs(smp[0]))
		}
		read += n
	}
	if peak == 0 {
		t.Error("ambience is silent")
	}
}

func TestPadSwellStartsSilent(t *testing.T) {
	p := newPad(sampleRate, 1000)
	buf := make([][2]float64, 1)
	p.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
	if p.Err() != nil {
		t.Errorf("unexpected error: %v", p.Err())
	}
}

func TestTrackMissingFile(t *testing.T) {
	if _, _, err := Track(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTrackRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bgm.mp3")
	if err := os.WriteFile(path, []byte("definitely not mpeg audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Track(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestMutedPlayerStaysStopped(t *testing.T) {
	m := NewMusic(nil)
	if err := m.Start(Options{Mute: true, Volume: DefaultVolume}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if m.Playing() {
		t.Error("muted player should not be playing")
	}
	m.Stop()
	m.Stop()
}
