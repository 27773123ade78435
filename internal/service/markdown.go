package service

import (
	"bytes"
	"html/template"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = newSanitizer()
)

var (
	codeBlockPattern  = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern = regexp.MustCompile("`[^`]+`")
	headingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasisPattern   = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)
	imagePattern      = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	wordPattern       = regexp.MustCompile(`\w+`)
)

// newSanitizer extends the UGC policy so highlighted code keeps its chroma
// classes and headings keep the ids the renderer assigns for anchors.
func newSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9\-_ ]+$`)).OnElements("pre", "code", "span", "div")
	policy.AllowAttrs("id").Matching(regexp.MustCompile(`^[a-zA-Z][\w\-.:]*$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return policy
}

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}

// EstimateReadTime reports reading minutes at 200 words per minute, never
// less than one. Half-minute boundaries round to the nearest even minute.
func EstimateReadTime(text string) int {
	words := len(wordPattern.FindAllString(text, -1))
	minutes := int(math.RoundToEven(float64(words) / 200.0))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// StripMarkdown reduces markdown to plain text: code and images are
// dropped, emphasis and link markup keep their inner text, whitespace
// collapses to single spaces.
func StripMarkdown(text string) string {
	text = codeBlockPattern.ReplaceAllString(text, "")
	text = inlineCodePattern.ReplaceAllString(text, "")
	text = headingPattern.ReplaceAllString(text, "")
	text = emphasisPattern.ReplaceAllString(text, "$1")
	text = imagePattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// Excerpt produces a plain-text teaser of at most maxLen characters, cut
// at the last word boundary with a trailing ellipsis when truncated.
func Excerpt(content string, maxLen int) string {
	plain := StripMarkdown(content)
	if utf8.RuneCountInString(plain) <= maxLen {
		return plain
	}

	runes := []rune(plain)
	cut := string(runes[:maxLen])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
