package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate_WithinLimit(t *testing.T) {
	got := Truncate("short text", 50)
	if got != "short text" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncate_TrimsWhitespace(t *testing.T) {
	got := Truncate("  padded  ", 50)
	if got != "padded" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestTruncate_CutsAtLimit(t *testing.T) {
	got := Truncate("abcdefghij", 5)
	if got != "abcde..." {
		t.Errorf("expected %q, got %q", "abcde...", got)
	}
}

func TestTruncate_TrimsCutBoundary(t *testing.T) {
	// A cut landing on a space must not leave "word ..." behind.
	got := Truncate("hello world again", 6)
	if got != "hello..." {
		t.Errorf("expected %q, got %q", "hello...", got)
	}
}

func TestTruncate_ZeroLimitDisables(t *testing.T) {
	long := "a very long description that would otherwise be cut"
	if got := Truncate(long, 0); got != long {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	// A byte-indexed cut through Cyrillic text must back up to the rune
	// boundary instead of emitting a partial encoding.
	got := Truncate("Введение в программирование и структуры данных", 25)
	if !utf8.ValidString(got) {
		t.Fatalf("output is not valid UTF-8: %q", got)
	}
	if got != "Введение в пр..." {
		t.Errorf("expected %q, got %q", "Введение в пр...", got)
	}

	for limit := 1; limit < 30; limit++ {
		out := Truncate("日本語のコースの説明テキスト", limit)
		if !utf8.ValidString(out) {
			t.Fatalf("limit %d: output is not valid UTF-8: %q", limit, out)
		}
		if !strings.HasSuffix(out, "...") {
			t.Fatalf("limit %d: expected truncated output, got %q", limit, out)
		}
	}
}

func TestTruncate_Idempotent(t *testing.T) {
	once := Truncate("abcdefghij", 8)
	twice := Truncate(once, 8)
	if once != twice {
		t.Errorf("expected idempotent output, got %q then %q", once, twice)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten("line one\nline two\n\n  line three")
	if got != "line one line two line three" {
		t.Errorf("expected flattened text, got %q", got)
	}
}
