package popshot

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/popshot/game"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool { return slices.Contains(keys, k) }
}

func TestKeymapCommands(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		name string
		keys []ebiten.Key
		want []game.Command
	}{
		{"nothing", nil, nil},
		{"original keys", []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, []game.Command{game.CommandRight, game.CommandFire}},
		{"left", []ebiten.Key{ebiten.KeyA}, []game.Command{game.CommandLeft}},
		{"aliases", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeySpace}, []game.Command{game.CommandLeft, game.CommandFire}},
		{"alias and original once", []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, []game.Command{game.CommandRight}},
		{"unbound key", []ebiten.Key{ebiten.KeyQ}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Commands(pressed(tt.keys...))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Commands = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeymapLookup(t *testing.T) {
	km := DefaultKeymap()
	if got := km.Lookup(ebiten.KeyS); got != game.CommandFire {
		t.Errorf("Lookup(S) = %v, want fire", got)
	}
	if got := km.Lookup(ebiten.KeyZ); got != game.CommandNone {
		t.Errorf("Lookup(Z) = %v, want none", got)
	}
}

func TestRepeating(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
	}
	for _, tt := range tests {
		if got := repeating(tt.ticks); got != tt.want {
			t.Errorf("repeating(%d) = %v, want %v", tt.ticks, got, tt.want)
		}
	}
}

func TestAckPressed(t *testing.T) {
	if ackPressed(pressed()) {
		t.Error("no keys should not acknowledge")
	}
	if ackPressed(pressed(ebiten.KeyD)) {
		t.Error("movement key should not acknowledge")
	}
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape} {
		if !ackPressed(pressed(k)) {
			t.Errorf("%v should acknowledge", k)
		}
	}
}
