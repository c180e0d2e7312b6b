package memory

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags end a line when they close.
var blockTags = map[string]bool{
	"div": true,
	"p":   true,
	"li":  true,
}

// PlainText flattens an item body to text lines. <br> and closing block tags
// become newlines; every other tag is dropped and entities are decoded.
func PlainText(markup string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return tidy(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				b.WriteByte('\n')
			}
		}
	}
}

// Lines returns PlainText split into lines.
func Lines(markup string) []string {
	text := PlainText(markup)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
