package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []map[string]any{
		{"id": "1", "title": "Villa", "price": 100.0},
		{"id": "2", "title": "Flat", "price": 55.5},
	}
	if err := s.Save("things.json", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out []map[string]any
	if err := s.Load("things.json", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%v\nout=%v", in, out)
	}
}

func TestStore_RoundTripObject(t *testing.T) {
	s := newTestStore(t)

	in := map[string]string{"jwtSecret": "s3cret", "tokenExpiry": "2h"}
	if err := s.Save("settings.json", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out map[string]string
	if err := s.Load("settings.json", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %v != %v", in, out)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	var v []any
	err := s.Load("nope.json", &v)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Load must not have created the file.
	if _, statErr := os.Stat(filepath.Join(s.Root(), "nope.json")); !os.IsNotExist(statErr) {
		t.Fatalf("Load created the missing file")
	}
}

func TestStore_LoadEmptyFileIsEmptyList(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Root(), "blank.json"), []byte("  \n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var v []any
	if err := s.Load("blank.json", &v); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(v) != 0 {
		t.Fatalf("expected empty list, got %v", v)
	}
}

func TestStore_LoadCorruptData(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Root(), "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var v map[string]any
	if err := s.Load("bad.json", &v); !errors.Is(err, ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
}

func TestStore_SaveEncodeError(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("chans.json", make(chan int)); !errors.Is(err, ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}

	// The lock must have been released: a follow-up save succeeds.
	if err := s.Save("chans.json", []int{1}); err != nil {
		t.Fatalf("Save after encode failure: %v", err)
	}
}

func TestStore_RejectsTraversalNames(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "..", "../users.json", "a/b.json", `a\b.json`, "..secrets"} {
		if err := s.Save(name, []int{}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Save(%q): expected ErrInvalidName, got %v", name, err)
		}
		var v any
		if err := s.Load(name, &v); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Load(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

// Concurrent saves to one collection must leave the file equal to exactly one
// of the written values, never a splice of two.
func TestStore_ConcurrentSavesNoPartialWrite(t *testing.T) {
	s := newTestStore(t)

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := make([]int, 100)
			for j := range payload {
				payload[j] = i
			}
			if err := s.Save("race.json", payload); err != nil {
				t.Errorf("Save: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var out []int
	if err := s.Load("race.json", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 100 {
		t.Fatalf("expected 100 elements, got %d", len(out))
	}
	first := out[0]
	for _, v := range out {
		if v != first {
			t.Fatalf("file is a splice of two writes: saw %d and %d", first, v)
		}
	}
}

// Readers racing a writer must always observe a complete JSON document.
func TestStore_ReadersNeverSeePartialWrites(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("feed.json", []string{"seed"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = s.Save("feed.json", []string{"value", "written", "repeatedly"})
		}
	}()

	for i := 0; i < 50; i++ {
		var v []string
		if err := s.Load("feed.json", &v); err != nil {
			t.Fatalf("Load during writes: %v", err)
		}
	}
	<-done
}

func TestStore_IndependentNamesDoNotInterfere(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Save("a.json", []int{i})
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = s.Save("b.json", []int{i * 10})
		}(i)
	}
	wg.Wait()

	var a, b []int
	if err := s.Load("a.json", &a); err != nil {
		t.Fatalf("Load a: %v", err)
	}
	if err := s.Load("b.json", &b); err != nil {
		t.Fatalf("Load b: %v", err)
	}
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("unexpected contents: a=%v b=%v", a, b)
	}
}

func TestStore_SaveIsPrettyPrinted(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("pretty.json", map[string]int{"a": 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(s.Root(), "pretty.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want, _ := json.MarshalIndent(map[string]int{"a": 1}, "", "  ")
	if string(raw) != string(want)+"\n" {
		t.Fatalf("unexpected file contents: %q", raw)
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Save("x.json", []int{i}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := os.ReadDir(s.Root())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "x.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only x.json, got %v", names)
	}
}
