package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{}, Event{Type: EventQuit}, true},
		{"window close", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_CLOSE}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"key down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}}, Event{Type: EventKeyDown, Key: sdl.SCANCODE_A}, true},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}}, Event{}, false},
		{"window moved", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
		{"mouse motion", &sdl.MouseMotionEvent{}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEscapeRequestsQuit(t *testing.T) {
	in := New()
	in.push(Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE})
	if in.QuitRequested() {
		t.Fatal("space should not quit")
	}

	in.push(Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE})
	if !in.QuitRequested() {
		t.Error("escape should request quit")
	}
}

func TestResizedReportsLatest(t *testing.T) {
	in := New()
	if _, _, ok := in.Resized(); ok {
		t.Fatal("no resize expected on a fresh handler")
	}

	in.push(Event{Type: EventWindowResize, Width: 640, Height: 480})
	in.push(Event{Type: EventWindowResize, Width: 1024, Height: 768})

	w, h, ok := in.Resized()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("Resized() = %d, %d, %v; want 1024, 768, true", w, h, ok)
	}
}
