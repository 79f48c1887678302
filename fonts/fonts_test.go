package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	hud, title := HUD.Get(), Title.Get()
	assert.Positive(t, Width(hud, "Level 1"))
	assert.Greater(t, Width(title, "YOU DIED"), Width(hud, "YOU DIED"))
}

func TestBadFontData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	require.Error(t, err)
	assert.Panics(t, func() { FontName("broken").Get() })
}
