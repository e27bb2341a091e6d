// Package markdown renders post messages into safe HTML.
package markdown

import (
	"bytes"
	"strings"

	"github.com/itchan-dev/boards/internal/domain"
	"github.com/itchan-dev/boards/internal/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		// raw html is let through here and stripped by the sanitizer below
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &TextProcessor{md: md, policy: policy}
}

// Render converts markdown text to sanitized HTML. On a conversion error the
// escaped plain text is returned.
func (tp *TextProcessor) Render(text domain.MsgText) string {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		logger.Log.Warn("failed to render markdown", "error", err)
		return tp.policy.Sanitize(text)
	}
	return strings.TrimSpace(tp.policy.Sanitize(buf.String()))
}

// RenderPost fills MessageHTML of the post.
func (tp *TextProcessor) RenderPost(post *domain.Post) {
	post.MessageHTML = tp.Render(post.Message)
}
