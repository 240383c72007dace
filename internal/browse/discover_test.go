package browse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// chdir is t.Chdir for Go toolchains older than 1.24: it changes the
// working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover_ExplicitPatternsReturnedUnchanged(t *testing.T) {
	// No filesystem validation is done on explicit patterns, so even
	// nonsense must survive the round trip.
	in := []string{"a.rwa", "missing/*.rwa", "definitely-not-there.rwa"}
	got, err := Discover(in)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("patterns changed (-want +got):\n%s", diff)
	}
}

func TestDiscover_DirectPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "x.rwa"))
	touch(t, filepath.Join(dir, "y.rwa"))
	chdir(t, dir)

	got, err := Discover(nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// The pattern itself, not the expanded file names.
	if diff := cmp.Diff([]string{"*.rwa"}, got); diff != "" {
		t.Errorf("want the direct pattern (-want +got):\n%s", diff)
	}
}

func TestDiscover_NestedPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "run1", "x.rwa"))
	touch(t, filepath.Join(dir, "notes.txt"))
	chdir(t, dir)

	got, err := Discover(nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if diff := cmp.Diff([]string{"*/*.rwa"}, got); diff != "" {
		t.Errorf("want the one-level pattern (-want +got):\n%s", diff)
	}
}

func TestDiscover_DirectWinsOverNested(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.rwa"))
	touch(t, filepath.Join(dir, "run1", "deep.rwa"))
	chdir(t, dir)

	got, err := Discover(nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if diff := cmp.Diff([]string{"*.rwa"}, got); diff != "" {
		t.Errorf("working directory should win (-want +got):\n%s", diff)
	}
}

func TestDiscover_NoFiles(t *testing.T) {
	chdir(t, t.TempDir())

	got, err := Discover(nil)
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("want ErrNoFiles, got patterns=%v err=%v", got, err)
	}
	if got != nil {
		t.Errorf("no patterns expected on ErrNoFiles, got %v", got)
	}
}

func TestExpandFiles_DedupesAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.rwa"))
	touch(t, filepath.Join(dir, "a.rwa"))
	chdir(t, dir)

	// a.rwa is matched by both patterns and must appear once.
	got, err := ExpandFiles([]string{"*.rwa", "a.rwa"})
	if err != nil {
		t.Fatalf("ExpandFiles: %v", err)
	}
	if diff := cmp.Diff([]string{"a.rwa", "b.rwa"}, got); diff != "" {
		t.Errorf("ExpandFiles (-want +got):\n%s", diff)
	}
}

func TestExpandFiles_BadPattern(t *testing.T) {
	if _, err := ExpandFiles([]string{"[unclosed"}); err == nil {
		t.Fatal("want error for malformed pattern")
	}
}
