package models

import "strings"

type ContentType string

const (
	BookContentType    ContentType = "book"
	ArticleContentType ContentType = "article"
	EssayContentType   ContentType = "essay"
	OtherContentType   ContentType = "other"
)

// ContentInput is the piece of writing submitted for review.
// It is constructed once by the caller and passed read-only into every module.
type ContentInput struct {
	Content           string            `json:"content"`                     // Full text body (required, non-empty)
	Title             string            `json:"title,omitempty"`             // Working title
	Author            string            `json:"author,omitempty"`            // Author name
	TargetAudience    string            `json:"target_audience,omitempty"`   // Intended readership (e.g., "young adults")
	ContentType       ContentType       `json:"content_type,omitempty"`      // "book", "article", "essay" or "other"
	AdditionalContext map[string]string `json:"additional_context,omitempty"` // Free-form key/value hints for prompts
}

// HasContent reports whether the input carries a non-empty body after trimming.
func (c ContentInput) HasContent() bool {
	return strings.TrimSpace(c.Content) != ""
}
