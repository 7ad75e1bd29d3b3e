package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a logical key the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyW
	KeyS
	KeyQuit
)

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

type Event struct {
	Kind EventKind
	Key  Key
}

// Input is polled once per tick: Held is a snapshot of keys being held down,
// Events drains the discrete events since the previous tick.
type Input interface {
	Held(k Key) bool
	Events() []Event
}

var keyBindings = map[Key][]ebiten.Key{
	KeyUp:   {ebiten.KeyArrowUp},
	KeyDown: {ebiten.KeyArrowDown},
	KeyW:    {ebiten.KeyW},
	KeyS:    {ebiten.KeyS},
	KeyQuit: {ebiten.KeyQ, ebiten.KeyEscape},
}

func logicalKey(k ebiten.Key) Key {
	for lk, keys := range keyBindings {
		for _, ek := range keys {
			if ek == k {
				return lk
			}
		}
	}
	return KeyNone
}

// keyboard reads the Ebiten keyboard and window state.
type keyboard struct {
	pressed []ebiten.Key
}

func (kb *keyboard) Held(k Key) bool {
	for _, ek := range keyBindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (kb *keyboard) Events() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, Event{Kind: EventQuit})
	}
	kb.pressed = inpututil.AppendJustPressedKeys(kb.pressed[:0])
	for _, k := range kb.pressed {
		if lk := logicalKey(k); lk != KeyNone {
			events = append(events, Event{Kind: EventKeyDown, Key: lk})
		}
	}
	return events
}
