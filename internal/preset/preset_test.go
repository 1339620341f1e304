package preset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inkmotion "github.com/tphakala/go-ink-motion"
)

func TestDecode_PartialOverridesDefaults(t *testing.T) {
	s, err := Decode(strings.NewReader(`
frames: 120
params:
  maxDistB: 60
  easing: cubic
`))
	require.NoError(t, err)

	assert.Equal(t, 120, s.Frames)
	assert.Equal(t, DefaultFPS, s.FPS)
	assert.Equal(t, 60.0, s.Params.MaxDistB)
	assert.Equal(t, inkmotion.EasingCubic, s.Params.Easing)
	assert.Equal(t, inkmotion.DefaultAlphaCap, s.Params.AlphaCap)
	assert.Equal(t, inkmotion.DefaultRelMin, s.Params.RelMin)
}

func TestDecode_EmptyIsDefault(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "frame: 10"},
		{"zero threshold", "params:\n  absorptionThreshold: 0"},
		{"zero frames", "frames: 0"},
		{"negative fps", "fps: -2"},
		{"unknown easing", "params:\n  easing: wobble"},
		{"malformed", "frames: [1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}

func TestDecode_KeepsInvalidArgument(t *testing.T) {
	_, err := Decode(strings.NewReader("params:\n  alphaCap: 0"))
	assert.ErrorIs(t, err, inkmotion.ErrInvalidArgument)
}

func TestEncodeDecode(t *testing.T) {
	s := Default()
	s.Frames = 90
	s.Params.Easing = inkmotion.EasingQuint
	s.Params.RelMax = 120

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	assert.Contains(t, buf.String(), "maxDistB: 90")

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 24\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, s.FPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open preset")
}

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type failingItems struct{}

func (failingItems) LoadItem(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingItems) SaveItem(string, []byte) error   { return errors.New("disk on fire") }

func TestStore_RoundTrip(t *testing.T) {
	st := &Store{items: memItems{}}

	_, ok, err := st.LoadLast()
	require.NoError(t, err)
	assert.False(t, ok)

	s := Default()
	s.FPS = 12
	require.NoError(t, st.SaveLast(s))

	got, ok, err := st.LoadLast()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, s, got)
}

func TestStore_RejectsInvalid(t *testing.T) {
	st := &Store{items: memItems{}}
	s := Default()
	s.Frames = -1
	assert.ErrorIs(t, st.SaveLast(s), ErrInvalidPreset)
}

func TestStore_Errors(t *testing.T) {
	st := &Store{items: failingItems{}}

	_, _, err := st.LoadLast()
	assert.ErrorContains(t, err, "could not load settings")
	assert.ErrorContains(t, st.SaveLast(Default()), "could not save settings")

	bad := &Store{items: memItems{lastUsedKey: []byte("fps: nope")}}
	_, _, err = bad.LoadLast()
	assert.ErrorContains(t, err, "could not parse saved settings")
}
