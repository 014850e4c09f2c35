package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimViewer(t *testing.T) *viewer {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	return &viewer{screen: screen}
}

func waitClosed(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump did not stop")
	}
}

func TestPumpStopsOnFini(t *testing.T) {
	v := newSimViewer(t)
	events := make(chan tcell.Event, 1)
	quit := make(chan struct{})
	done := make(chan struct{})
	go v.pump(events, quit, done)

	v.screen.Fini()
	waitClosed(t, done)
}

func TestPumpStopsOnQuitWhileBlocked(t *testing.T) {
	v := newSimViewer(t)
	defer v.screen.Fini()
	// unbuffered and never read, so the pump blocks on its send
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	done := make(chan struct{})
	go v.pump(events, quit, done)

	if err := v.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("post: %v", err)
	}
	close(quit)
	waitClosed(t, done)
}
