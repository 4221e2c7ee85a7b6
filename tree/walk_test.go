package tree

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func collect(t *testing.T, root string) []string {
	t.Helper()
	var got []string
	for e, err := range Walk(root) {
		if err != nil {
			t.Fatalf("Walk failed: %v", err)
		}
		rel, _ := filepath.Rel(root, e.Path())
		got = append(got, filepath.ToSlash(rel))
	}
	return got
}

func TestWalk_SubdirectoriesBeforeOwnEntries(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a.jpg", "sub/b.jpg", "sub/c.jpg")

	got := collect(t, root)
	want := []string{"sub/b.jpg", "sub/c.jpg", "a.jpg", "sub"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestWalk_NestedLexicalOrder(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root,
		"z.jpg",
		"b/2.jpg",
		"b/1.jpg",
		"a/deep/x.jpg",
		"a/y.jpg",
	)

	got := collect(t, root)
	want := []string{
		"a/deep/x.jpg",
		"a/deep",
		"a/y.jpg",
		"b/1.jpg",
		"b/2.jpg",
		"a",
		"b",
		"z.jpg",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestWalk_Restartable(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a.jpg", "sub/b.jpg")

	seq := Walk(root)
	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("expected 3 entries on both passes, got %d and %d", first, second)
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a.jpg", "b.jpg", "c.jpg")

	count := 0
	for range Walk(root) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 entries, got %d", count)
	}
}

func TestWalk_IsLazy(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/1.jpg", "b/2.jpg")

	// Removing b while a is being yielded must not surface b's stale entries.
	var got []string
	for e, err := range Walk(root) {
		if err != nil {
			t.Fatalf("Walk failed: %v", err)
		}
		if e.Name == "1.jpg" {
			if err := os.RemoveAll(filepath.Join(root, "b")); err != nil {
				t.Fatal(err)
			}
		}
		got = append(got, e.Name)
		if len(got) > 10 {
			break
		}
	}
	if slices.Contains(got, "2.jpg") {
		t.Errorf("Walk yielded an entry from a removed directory: %v", got)
	}
}

func TestWalk_Errors(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "file.jpg")

	tests := []struct {
		name string
		path string
		is   error
	}{
		{name: "missing root", path: filepath.Join(root, "missing"), is: os.ErrNotExist},
		{name: "file root", path: filepath.Join(root, "file.jpg"), is: ErrExpectedDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotErr error
			for _, err := range Walk(tt.path) {
				gotErr = err
			}
			if !errors.Is(gotErr, tt.is) {
				t.Errorf("Walk(%q) error = %v, want %v", tt.path, gotErr, tt.is)
			}
		})
	}
}

func TestWalk_Empty(t *testing.T) {
	if got := collect(t, t.TempDir()); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}
