package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	t.Run("renders standalone document", func(t *testing.T) {
		t.Parallel()

		converter := NewGoldmarkConverter()
		got, err := converter.ToHTML(context.Background(), "# Title\n\nSome **bold** text.")
		if err != nil {
			t.Fatalf("ToHTML = %v, want nil", err)
		}

		for _, want := range []string{"<!DOCTYPE html>", "<h1", "Title", "<strong>bold</strong>"} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		t.Parallel()

		converter := NewGoldmarkConverter()
		got, err := converter.ToHTML(context.Background(), "| a | b |\n|---|---|\n| 1 | 2 |")
		if err != nil {
			t.Fatalf("ToHTML = %v, want nil", err)
		}
		if !strings.Contains(got, "<table>") {
			t.Errorf("output missing <table>:\n%s", got)
		}
	})

	t.Run("canceled context returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		converter := NewGoldmarkConverter()
		_, err := converter.ToHTML(ctx, "# Title")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ToHTML = %v, want context.Canceled", err)
		}
	})
}
