// pkg/tui/keys.go
package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/event"
)

// Host key codes for the keys a terminal can report. Letters use their
// upper case code point.
const (
	CodeSpace = 32
	CodeLeft  = 37
	CodeUp    = 38
	CodeRight = 39
	CodeDown  = 40
)

var specialKeys = map[tcell.Key]int{
	tcell.KeyLeft:  CodeLeft,
	tcell.KeyUp:    CodeUp,
	tcell.KeyRight: CodeRight,
	tcell.KeyDown:  CodeDown,
}

// KeyCode translates a terminal key event into a host key code.
// It reports false for keys with no code.
func KeyCode(ev *tcell.EventKey) (int, bool) {
	if code, ok := specialKeys[ev.Key()]; ok {
		return code, true
	}
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	switch {
	case r == ' ':
		return CodeSpace, true
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return int(unicode.ToUpper(r)), true
	case r < unicode.MaxASCII && unicode.IsDigit(r):
		return int(r), true
	}
	return 0, false
}

// Modifiers converts tcell's modifier mask. An upper case letter counts
// as shifted even when the terminal does not say so.
func Modifiers(ev *tcell.EventKey) event.Modifiers {
	var m event.Modifiers
	mod := ev.Modifiers()
	if mod&tcell.ModShift != 0 || (ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune())) {
		m |= event.ModShift
	}
	if mod&tcell.ModCtrl != 0 {
		m |= event.ModCtrl
	}
	if mod&tcell.ModAlt != 0 {
		m |= event.ModAlt
	}
	if mod&tcell.ModMeta != 0 {
		m |= event.ModMeta
	}
	return m
}

// isQuit reports whether ev asks to leave the game
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
