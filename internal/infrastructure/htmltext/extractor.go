package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"AstroVision/internal/ports"
)

// blockTags end a line of text; everything else is inline.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true, "section": true, "article": true,
}

var markdownMarks = strings.NewReplacer("**", "", "__", "", "`", "", "#", "", "> ", "")

// Extractor reduces post bodies, HTML or markdown, to plain text.
type Extractor struct{}

var _ ports.TextExtractor = (*Extractor)(nil)

// NewExtractor returns a stateless extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// PlainText drops markup, scripts and styles and collapses whitespace.
func (e *Extractor) PlainText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	collectText(doc.Selection, &b)

	return strings.Join(strings.Fields(markdownMarks.Replace(b.String())), " "), nil
}

// FirstImage returns the src of the first img element, if any.
func (e *Extractor) FirstImage(content string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", false
	}
	src, ok := doc.Find("img[src]").First().Attr("src")
	src = strings.TrimSpace(src)
	return src, ok && src != ""
}

func collectText(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		if name == "#text" {
			b.WriteString(node.Text())
			return
		}
		collectText(node, b)
		if blockTags[name] {
			b.WriteByte('\n')
		}
	})
}
