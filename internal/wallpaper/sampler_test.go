package wallpaper

import "testing"

const (
	sunsetURL    = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=711&fit=crop&crop=center"
	mountainsURL = "https://images.unsplash.com/photo-1464822759844-d150bb1e7ead?w=400&h=711&fit=crop&crop=center"
	artisticURL  = "https://images.unsplash.com/photo-1549490349-8643362247b5?w=400&h=711&fit=crop&crop=center"
)

// TestPick_KeywordMatch asserts case-insensitive substring matching against
// the keyword table.
func TestPick_KeywordMatch(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"plain keyword", "sunset over the sea", sunsetURL},
		{"mixed case", "Sunset over mountains", sunsetURL},
		{"keyword inside word", "SUNSETS EVERYWHERE", sunsetURL},
		{"surrounding noise", "a photo of mountains, dramatic light", mountainsURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Pick(tt.prompt, "9:16", "1", "webp")
			if !res.Success {
				t.Fatalf("expected success, got error %q", res.Error)
			}
			if res.URL != tt.want {
				t.Errorf("prompt %q: got %q, want %q", tt.prompt, res.URL, tt.want)
			}
		})
	}
}

// TestPick_DeclarationOrderWins asserts that when two keywords appear in the
// prompt, the one declared earlier in the table is selected regardless of
// position in the prompt.
func TestPick_DeclarationOrderWins(t *testing.T) {
	res := Pick("nature around abstract shapes", "9:16", "1", "webp")
	if res.URL != "https://images.unsplash.com/photo-1558618666-fcd25d1cd2f6?w=400&h=711&fit=crop&crop=center" {
		t.Errorf("expected abstract entry (declared before nature), got %q", res.URL)
	}

	res = Pick("mountains at sunset", "9:16", "1", "webp")
	if res.URL != sunsetURL {
		t.Errorf("expected sunset entry (declared before mountains), got %q", res.URL)
	}
}

// TestPick_HashFallback asserts the deterministic MD5 fallback for prompts
// with no keyword. Expected indices were computed with md5 by hand:
// first 8 hex digits of the digest, mod 10.
func TestPick_HashFallback(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		// md5("xyz123 completely unrelated text")[:8] = e9d39bae -> idx 8
		{"xyz123 completely unrelated text", artisticURL},
		// md5("Quiet harbor at dawn")[:8] = 3aa5c05a -> idx 0
		{"Quiet harbor at dawn", sunsetURL},
		// md5("zzzz")[:8] = 02c42515 -> idx 1
		{"zzzz", mountainsURL},
	}

	for _, tt := range tests {
		res := Pick(tt.prompt, "9:16", "1", "webp")
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
		if res.URL != tt.want {
			t.Errorf("prompt %q: got %q, want %q", tt.prompt, res.URL, tt.want)
		}
	}
}

// TestPick_FallbackIsStable asserts that the same non-matching prompt always
// resolves to the same URL, and that the fallback is case-sensitive over the
// original prompt text.
func TestPick_FallbackIsStable(t *testing.T) {
	first := Pick("qwerty uiop", "9:16", "1", "webp")
	for i := 0; i < 10; i++ {
		again := Pick("qwerty uiop", "9:16", "1", "webp")
		if again.URL != first.URL {
			t.Fatalf("fallback not stable: %q vs %q", again.URL, first.URL)
		}
	}

	inTable := false
	for _, img := range sampleImages {
		if img.URL == first.URL {
			inTable = true
			break
		}
	}
	if !inTable {
		t.Errorf("fallback URL %q is not in the sample table", first.URL)
	}
}

// TestPick_Metadata asserts the metadata mapping carries the request
// parameters and the static-source tag.
func TestPick_Metadata(t *testing.T) {
	res := Pick("zzzz", "16:9", "0.25", "webp")

	want := map[string]string{
		"prompt":       "zzzz",
		"aspect_ratio": "16:9",
		"quality":      "0.25",
		"format":       "webp",
		"source":       "sample_images",
	}
	for k, v := range want {
		if res.Metadata[k] != v {
			t.Errorf("metadata[%q] = %q, want %q", k, res.Metadata[k], v)
		}
	}
	if res.Metadata["generation_time"] == "" {
		t.Error("metadata missing generation_time")
	}
}
