package service

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasics(t *testing.T) {
	html, err := RenderMarkdown("# My Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, `id="my-title"`) {
		t.Fatalf("expected auto heading id, got %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("expected bold text, got %q", out)
	}
}

func TestRenderMarkdownHighlightsCodeWithClasses(t *testing.T) {
	html, err := RenderMarkdown("```go\nfmt.Println(\"hi\")\n```")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<pre") {
		t.Fatalf("expected a pre block, got %q", out)
	}
	if !strings.Contains(out, "chroma") {
		t.Fatalf("expected chroma classes, got %q", out)
	}
	if !strings.Contains(out, "<span") {
		t.Fatalf("expected token spans, got %q", out)
	}
	if strings.Contains(out, "style=") {
		t.Fatalf("expected class based highlighting without inline styles, got %q", out)
	}
}

func TestRenderMarkdownStripsDangerousContent(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert(1)</script>\n\n[click](javascript:alert(1))")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}

	out := string(html)
	if strings.Contains(out, "<script") {
		t.Fatalf("expected script tags to be removed, got %q", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("expected javascript urls to be removed, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected surrounding text to survive, got %q", out)
	}
}

func TestRenderMarkdownLinkifiesBareURLs(t *testing.T) {
	html, err := RenderMarkdown("visit https://example.com today")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}

	if !strings.Contains(string(html), `href="https://example.com"`) {
		t.Fatalf("expected bare url to become a link, got %q", html)
	}
}

func TestEstimateReadTime(t *testing.T) {
	cases := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 1},
		{"short", 50, 1},
		{"exact multiple", 400, 2},
		{"two minutes", 450, 2},
		{"half rounds to even", 500, 2},
		{"half rounds up to even", 700, 4},
		{"past the half", 520, 3},
	}

	for _, tc := range cases {
		text := strings.TrimSpace(strings.Repeat("word ", tc.words))
		if got := EstimateReadTime(text); got != tc.want {
			t.Fatalf("%s: expected %d minutes for %d words, got %d", tc.name, tc.want, tc.words, got)
		}
	}
}

func TestStripMarkdown(t *testing.T) {
	input := "## Heading\n\nSome **bold** text with `code` and [a link](https://example.com).\n\n```go\nfmt.Println(1)\n```\n\n![diagram](/static/d.png) done"

	got := StripMarkdown(input)
	want := "Heading Some bold text with and a link. done"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExcerptCutsAtWordBoundary(t *testing.T) {
	if got := Excerpt("short text", 50); got != "short text" {
		t.Fatalf("expected short text unchanged, got %q", got)
	}

	if got := Excerpt("alpha beta gamma delta", 12); got != "alpha beta..." {
		t.Fatalf("expected word boundary cut, got %q", got)
	}
}
