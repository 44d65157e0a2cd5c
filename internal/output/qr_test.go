package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"rsc.io/qr"
)

func TestDefaultQRConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultQRConfig()

	assert.Equal(t, qr.M, cfg.Level)
	assert.Equal(t, 2, cfg.QuietZone)
	assert.True(t, cfg.HalfBlocks)
}

func TestCanRenderQR(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.False(t, CanRenderQR(&buf), "bytes.Buffer should not be a terminal")
	assert.False(t, CanRenderQR(nil), "nil writer should not be a terminal")
}

func TestRenderQR_NonTerminal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	drawn := RenderQR(&buf, "0xf85f800182520894353535353535353535353535353535353535353580801ba0", DefaultQRConfig())

	assert.False(t, drawn)
	assert.Empty(t, buf.String(), "no output should be produced for non-terminal")
}

func TestRenderQR_EmptyPayload(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.False(t, RenderQR(&buf, "", DefaultQRConfig()))
}
