package sanitizer

import (
	"context"
	"regexp"
	"strings"
)

const (
	StageLinks           = "links"
	StageImages          = "images"
	StageInlineCode      = "inline-code"
	StageBold            = "bold"
	StageItalic          = "italic"
	StageHeadings        = "headings"
	StageUnorderedLists  = "unordered-lists"
	StageOrderedLists    = "ordered-lists"
	StageStrikethrough   = "strikethrough"
	StageBlockquotes     = "blockquotes"
	StageHorizontalRules = "horizontal-rules"
	StageHTMLComments    = "html-comments"
	StageHTMLAnchors     = "html-anchors"
	StageBlankLines      = "blank-lines"
)

var (
	reLink           = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
	reImage          = regexp.MustCompile(`!\[(.+?)\]\(.+?\)`)
	reInlineCode     = regexp.MustCompile("`([^`]+)`")
	reBold           = regexp.MustCompile(`(?:\*{2}|_{2})(.*?)(?:\*{2}|_{2})`)
	reItalic         = regexp.MustCompile(`(?:\*|_)(.*?)(?:\*|_)`)
	reHeading        = regexp.MustCompile(`(?m)^#+\s*(.*?)\s*#*$`)
	reUnorderedList  = regexp.MustCompile(`(?m)^\s*[-*]\s+(.*?)\s*$`)
	reOrderedList    = regexp.MustCompile(`(?m)^\s*\d+\.\s+(.*?)\s*$`)
	reStrikethrough  = regexp.MustCompile(`~~(.*?)~~`)
	reBlockquote     = regexp.MustCompile(`(?m)^\s*>\s*(.*?)\s*$`)
	reHorizontalRule = regexp.MustCompile(`(?m)^\s*[-*_]\s*[-*_]\s*[-*_]\s*$`)
	reHTMLComment    = regexp.MustCompile(`(?s)<!--.*?-->`)
	reHTMLAnchor     = regexp.MustCompile(`\(#[^)]+\)`)
	reBlankLine      = regexp.MustCompile(`(?m)^\s*[\r\n]`)
)

// Order matters: emphasis is stripped before line markers, so "* item" survives the
// italic stage and "**" is gone before horizontal rules are matched.
var markdownStages = Pipeline{
	{Name: StageLinks, Strategy: stripLinks},
	{Name: StageImages, Strategy: replaceWith(reImage, "${1}")},
	{Name: StageInlineCode, Strategy: replaceWith(reInlineCode, "${1}")},
	{Name: StageBold, Strategy: replaceWith(reBold, "${1}")},
	{Name: StageItalic, Strategy: replaceWith(reItalic, "${1}")},
	{Name: StageHeadings, Strategy: replaceWith(reHeading, "${1}")},
	{Name: StageUnorderedLists, Strategy: replaceWith(reUnorderedList, "${1}")},
	{Name: StageOrderedLists, Strategy: replaceWith(reOrderedList, "${1}")},
	{Name: StageStrikethrough, Strategy: replaceWith(reStrikethrough, "${1}")},
	{Name: StageBlockquotes, Strategy: replaceWith(reBlockquote, "${1}")},
	{Name: StageHorizontalRules, Strategy: replaceWith(reHorizontalRule, "")},
	{Name: StageHTMLComments, Strategy: replaceWith(reHTMLComment, "")},
	{Name: StageHTMLAnchors, Strategy: replaceWith(reHTMLAnchor, "")},
	{Name: StageBlankLines, Strategy: replaceWith(reBlankLine, "")},
}

// MarkdownStages returns a copy of the stages MarkdownToText runs, in order.
func MarkdownStages() Pipeline {
	out := make(Pipeline, len(markdownStages))
	copy(out, markdownStages)
	return out
}

// MarkdownToText strips Markdown syntax and keeps the text it wraps. The stages are
// re-applied until the output stops changing, so the result is already plain text
// for the pipeline and MarkdownToText(MarkdownToText(s)) == MarkdownToText(s).
func MarkdownToText(markdown string) string {
	out, _ := MarkdownToTextContext(context.Background(), markdown)
	return out
}

// MarkdownToTextContext is MarkdownToText with cancellation. Nested constructs lose
// one layer per pass, so deeply nested input needs many passes; ctx is checked
// before each one and its error is returned once it is done.
func MarkdownToTextContext(ctx context.Context, markdown string) (string, error) {
	out := markdown
	// Every stage only deletes, so each changing pass shrinks the string.
	for i := 0; i < len(markdown)+1; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		next := markdownStages.Apply(out)
		if next == out {
			break
		}
		out = next
	}
	return out, nil
}

// stripLinks replaces [text](url) with text but leaves ![alt](url) for the image stage.
func stripLinks(s string) string {
	matches := reLink.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		if m[0] > 0 && s[m[0]-1] == '!' {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(s[m[2]:m[3]])
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func replaceWith(re *regexp.Regexp, repl string) Strategy {
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}
