package wallpaper

import (
	"crypto/md5"
	"encoding/binary"
	"strings"
	"time"
)

// sampleImage is one entry of the ordered keyword table. Selection is
// first-match in declaration order, so this must stay a slice, not a map.
type sampleImage struct {
	Keyword string
	URL     string
}

// sampleImages maps prompt keywords to curated stock wallpapers. The order
// matters: the first keyword found in the prompt wins.
var sampleImages = []sampleImage{
	{"sunset", "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=711&fit=crop&crop=center"},
	{"mountains", "https://images.unsplash.com/photo-1464822759844-d150bb1e7ead?w=400&h=711&fit=crop&crop=center"},
	{"abstract", "https://images.unsplash.com/photo-1558618666-fcd25d1cd2f6?w=400&h=711&fit=crop&crop=center"},
	{"geometric", "https://images.unsplash.com/photo-1520637836862-4d197d17c13a?w=400&h=711&fit=crop&crop=center"},
	{"nature", "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=711&fit=crop&crop=center"},
	{"minimal", "https://images.unsplash.com/photo-1553356084-58ef4a67b2a7?w=400&h=711&fit=crop&crop=center"},
	{"gradient", "https://images.unsplash.com/photo-1509114397022-ed747cca3f65?w=400&h=711&fit=crop&crop=center"},
	{"neon", "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=711&fit=crop&crop=center"},
	{"artistic", "https://images.unsplash.com/photo-1549490349-8643362247b5?w=400&h=711&fit=crop&crop=center"},
	{"space", "https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=400&h=711&fit=crop&crop=center"},
}

// Result is the outcome of a sample selection.
type Result struct {
	Success  bool
	URL      string
	Error    string
	Metadata map[string]string
}

// Pick selects a wallpaper URL for the given prompt.
//
// The prompt is lower-cased and scanned against the keyword table in
// declaration order; the first keyword contained in the prompt wins. When no
// keyword matches, the first four bytes of the MD5 digest of the original
// prompt (big-endian) modulo the table size pick the fallback entry, so the
// same prompt always resolves to the same URL across processes.
func Pick(prompt, aspectRatio, quality, format string) *Result {
	url := ""
	promptLower := strings.ToLower(prompt)
	for _, img := range sampleImages {
		if strings.Contains(promptLower, img.Keyword) {
			url = img.URL
			break
		}
	}
	if url == "" {
		sum := md5.Sum([]byte(prompt))
		idx := binary.BigEndian.Uint32(sum[:4]) % uint32(len(sampleImages))
		url = sampleImages[idx].URL
	}

	return &Result{
		Success: true,
		URL:     url,
		Metadata: map[string]string{
			"prompt":          prompt,
			"aspect_ratio":    aspectRatio,
			"quality":         quality,
			"format":          format,
			"generation_time": time.Now().UTC().Format(time.RFC3339Nano),
			"source":          "sample_images",
		},
	}
}
