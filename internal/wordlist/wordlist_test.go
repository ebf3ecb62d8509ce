package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cespare/xxhash/v2"

	strerrors "github.com/tamirms/strset/errors"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func collect(t *testing.T, l *List) []string {
	t.Helper()
	var words []string
	err := l.Each(func(w []byte) error {
		words = append(words, string(w))
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	return words
}

func TestOpenEach(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{"simple", "dog\ncat\nbird\n", []string{"dog", "cat", "bird"}},
		{"no_trailing_newline", "dog\ncat", []string{"dog", "cat"}},
		{"crlf", "dog\r\ncat\r\n", []string{"dog", "cat"}},
		{"blank_lines", "\n\ndog\n\n\ncat\n\n", []string{"dog", "cat"}},
		{"duplicates_kept", "a\na\nb\n", []string{"a", "a", "b"}},
		{"spaces_kept", " a \nb c\n", []string{" a ", "b c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := Open(writeFile(t, tc.contents))
			if err != nil {
				t.Fatal(err)
			}
			defer l.Close()

			if got := collect(t, l); !slices.Equal(got, tc.want) {
				t.Fatalf("words = %q, want %q", got, tc.want)
			}
			n, err := l.Len()
			if err != nil || n != len(tc.want) {
				t.Fatalf("Len = (%d, %v), want %d", n, err, len(tc.want))
			}
			if l.Size() != len(tc.contents) {
				t.Errorf("Size = %d, want %d", l.Size(), len(tc.contents))
			}
		})
	}
}

func TestOpenEmptyFile(t *testing.T) {
	l, err := Open(writeFile(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := collect(t, l); len(got) != 0 {
		t.Fatalf("words = %q, want none", got)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open("/nonexistent/path/to/words.txt"); err == nil {
		t.Error("Expected error for non-existent file path")
	}
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("Expected error when opening a directory")
	}
}

func TestEachStopsOnError(t *testing.T) {
	l := OpenBytes([]byte("a\nb\nc\n"))
	stop := errors.New("stop")
	var seen []string
	err := l.Each(func(w []byte) error {
		seen = append(seen, string(w))
		if string(w) == "b" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Each = %v, want stop", err)
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Fatalf("seen = %q", seen)
	}
}

func TestChecksum(t *testing.T) {
	contents := "alpha\nbeta\ngamma\n"
	l, err := Open(writeFile(t, contents))
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	got, err := l.Checksum()
	if err != nil {
		t.Fatal(err)
	}
	if want := xxhash.Sum64String(contents); got != want {
		t.Fatalf("Checksum = %x, want %x", got, want)
	}
	fromBytes, _ := OpenBytes([]byte(contents)).Checksum()
	if fromBytes != got {
		t.Fatalf("OpenBytes checksum %x differs from mapped %x", fromBytes, got)
	}
}

func TestClose(t *testing.T) {
	l, err := Open(writeFile(t, "a\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := l.Each(func([]byte) error { return nil }); !errors.Is(err, strerrors.ErrListClosed) {
		t.Errorf("Each after Close = %v, want ErrListClosed", err)
	}
	if _, err := l.Checksum(); !errors.Is(err, strerrors.ErrListClosed) {
		t.Errorf("Checksum after Close = %v, want ErrListClosed", err)
	}
	if _, err := l.Len(); !errors.Is(err, strerrors.ErrListClosed) {
		t.Errorf("Len after Close = %v, want ErrListClosed", err)
	}
}
