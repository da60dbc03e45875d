package models

import (
	"time"
)

// SeoMeta holds the optional SEO metadata attached to a generated post.
// Every field may be absent; display code falls back to the topic.
type SeoMeta struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// BlogPost represents one finished generated article as delivered by the
// generation service. Field names follow the service's snake_case wire format.
type BlogPost struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	Seo       SeoMeta   `json:"seo"`
	FinalPost string    `json:"final_post"`
}

// DisplayTitle returns the SEO title when present, otherwise the original topic.
func (p *BlogPost) DisplayTitle() string {
	if p.Seo.Title != nil && *p.Seo.Title != "" {
		return *p.Seo.Title
	}
	return p.Topic
}
