package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEventString(t *testing.T) {
	assert.Equal(t, "x", RuneKey('x').String())
	assert.Equal(t, "Enter", RuneKey('\n').String())
	assert.Equal(t, "Space", RuneKey(' ').String())
	assert.Equal(t, "Ctrl+Shift+Left", KeyEvent{Key: KeyLeft, Modifiers: ModCtrl | ModShift}.String())
	assert.Equal(t, "Alt+Unknown", KeyEvent{Modifiers: ModAlt}.String())
	assert.True(t, KeyEvent{Modifiers: ModShift}.HasShift())
}
