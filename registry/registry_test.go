package registry

import (
	"reflect"
	"testing"
)

func TestMountEmitsEvent(t *testing.T) {
	r := New()
	var got []Event
	r.Subscribe(func(ev Event) { got = append(got, ev) })

	r.Mount("bottom", 4)

	want := []Event{{Kind: Mounted, ID: "bottom", Size: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if ids := r.IDs(); !reflect.DeepEqual(ids, []string{"bottom"}) {
		t.Errorf("IDs() = %v", ids)
	}
	if size, ok := r.Size("bottom"); !ok || size != 4 {
		t.Errorf("Size() = %d, %v", size, ok)
	}
}

func TestRemountReplacesContainer(t *testing.T) {
	r := New()
	var kinds []EventKind
	r.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	r.Mount("bottom", 4)
	r.Mount("bottom", 6)

	want := []EventKind{Mounted, Unmounted, Mounted}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
	if size, _ := r.Size("bottom"); size != 6 {
		t.Errorf("size after remount = %d, want 6", size)
	}
	if len(r.IDs()) != 1 {
		t.Errorf("IDs() = %v, want one entry", r.IDs())
	}
}

func TestUpdateUnknownIsIgnored(t *testing.T) {
	r := New()
	var got []Event
	r.Subscribe(func(ev Event) { got = append(got, ev) })

	r.Update("ghost", 3)
	r.Unmount("ghost")

	if len(got) != 0 {
		t.Errorf("events = %v, want none", got)
	}
}

func TestUnmount(t *testing.T) {
	r := New()
	r.Mount("a", 1)
	r.Mount("b", 2)

	r.Unmount("a")

	if ids := r.IDs(); !reflect.DeepEqual(ids, []string{"b"}) {
		t.Errorf("IDs() = %v, want [b]", ids)
	}
	if _, ok := r.Size("a"); ok {
		t.Error("unmounted container still has a size")
	}
}

func TestSubscribeTeardown(t *testing.T) {
	r := New()
	var first, second int
	cancel := r.Subscribe(func(Event) { first++ })
	r.Subscribe(func(Event) { second++ })

	r.Mount("a", 1)
	cancel()
	cancel() // second cancel is harmless
	r.Mount("b", 1)

	if first != 1 {
		t.Errorf("cancelled handler saw %d events, want 1", first)
	}
	if second != 2 {
		t.Errorf("live handler saw %d events, want 2", second)
	}
}

func TestIndependentRegistries(t *testing.T) {
	r1 := New()
	r2 := New()
	var n int
	r1.Subscribe(func(Event) { n++ })

	r2.Mount("elsewhere", 3)

	if n != 0 {
		t.Errorf("handler on r1 saw %d events from r2", n)
	}
}

func TestWatcherAttachesOnMount(t *testing.T) {
	r := New()
	r.Mount("early", 2)

	w := Watch(r)
	defer w.Close()

	if w.Attached() != 1 {
		t.Fatalf("Attached() = %d, want 1", w.Attached())
	}

	r.Mount("late", 3)
	c, ok := w.Controller("late")
	if !ok {
		t.Fatal("no controller for late container")
	}
	if c.Ring().Size() != 3 {
		t.Errorf("controller size = %d, want 3", c.Ring().Size())
	}
}

func TestWatcherResetsOnRemount(t *testing.T) {
	r := New()
	w := Watch(r)
	defer w.Close()

	r.Mount("bottom", 4)
	c, _ := w.Controller("bottom")
	c.SetFocused(true)
	c.Focus(2)

	r.Mount("bottom", 4)
	c2, ok := w.Controller("bottom")
	if !ok {
		t.Fatal("no controller after remount")
	}
	if c2 == c {
		t.Error("remount should attach a fresh controller")
	}
	if c2.Current() != -1 {
		t.Errorf("fresh controller current = %d, want -1", c2.Current())
	}
}

func TestWatcherTracksResize(t *testing.T) {
	r := New()
	w := Watch(r)
	defer w.Close()

	r.Mount("bottom", 5)
	c, _ := w.Controller("bottom")
	c.SetFocused(true)
	c.Focus(4)

	r.Update("bottom", 2)
	if c.Current() != 1 {
		t.Errorf("current after shrink = %d, want 1", c.Current())
	}

	r.Unmount("bottom")
	if w.Attached() != 0 {
		t.Errorf("Attached() = %d after unmount, want 0", w.Attached())
	}
}

func TestWatcherClose(t *testing.T) {
	r := New()
	w := Watch(r)
	w.Close()

	// Events after Close must not reach the watcher.
	r.Mount("bottom", 1)
	if w.Attached() != 0 {
		t.Errorf("closed watcher attached %d controllers", w.Attached())
	}
}
