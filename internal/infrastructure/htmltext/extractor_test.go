package htmltext

import "testing"

func TestPlainText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "The moon   rises\n\nover the sea.", "The moon rises over the sea."},
		{"html blocks", "<h2>Saturn</h2><p>Return at <strong>29</strong>.</p><p>Growth.</p>", "Saturn Return at 29. Growth."},
		{"scripts dropped", "<p>Keep</p><script>alert(1)</script><style>p{}</style>", "Keep"},
		{"markdown marks", "## Mercury\n**Retrograde** brings `review`.", "Mercury Retrograde brings review."},
		{"entities", "<p>Sun &amp; Moon</p>", "Sun & Moon"},
	}

	e := NewExtractor()
	for _, tc := range cases {
		got, err := e.PlainText(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFirstImage(t *testing.T) {
	t.Parallel()

	e := NewExtractor()
	src, ok := e.FirstImage(`<p>intro</p><img src=" https://cdn.example/a.png "><img src="b.png">`)
	if !ok || src != "https://cdn.example/a.png" {
		t.Fatalf("unexpected first image %q %v", src, ok)
	}
	if _, ok := e.FirstImage("no pictures here"); ok {
		t.Fatalf("expected no image")
	}
	if _, ok := e.FirstImage(`<img src="">`); ok {
		t.Fatalf("empty src must not count")
	}
}
