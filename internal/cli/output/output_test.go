package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"auto resolves to text", ModeAuto, ModeText},
		{"text stays text", ModeText, ModeText},
		{"json stays json", ModeJSON, ModeJSON},
		{"unknown falls back to text", Mode("yaml"), ModeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRendererWritesPlainToBuffers(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeAuto)

	r.Printf("formatted %d files\n", 3)
	r.Println("done")
	r.Success("all good")
	r.Errorf("bad: %s\n", "oops")

	// Buffers are not terminals, so no escape codes appear.
	assert.Equal(t, "formatted 3 files\ndone\nall good\n", out.String())
	assert.Equal(t, "bad: oops\n", errOut.String())
	assert.NotContains(t, out.String(), "\x1b[")
	assert.NotContains(t, errOut.String(), "\x1b[")
}

func TestRendererJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"unaligned": 2}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["unaligned"])
}

func TestRendererWriter(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeText)
	assert.Same(t, &out, r.Writer().(*bytes.Buffer))
}
