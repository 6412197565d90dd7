// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

func TestAIFF_Decode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := aiff.NewEncoder(f, 22050, 16, 2)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{SampleRate: 22050, NumChannels: 2},
		Data:           []int{0, 0, 16384, -16384, 8192, -8192},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	f.Close()

	src, err := OpenFile(DefaultRegistry(), path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Fatalf("format = %d Hz x %d, want 22050 Hz x 2", src.SampleRate(), src.Channels())
	}

	got := readAll(t, src)
	want := []float32{0, 0, 0.5, -0.5, 0.25, -0.25}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAIFFDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (AIFFDecoder{}).Decode(bytes.NewReader([]byte("This is not AIFF data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}
