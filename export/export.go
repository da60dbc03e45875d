// Package export turns a normalized article into a standalone downloadable
// HTML file. Rasterizing the rendered HTML to PDF is left to external tooling.
package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"paceflow/blog-gateway/models"
	"paceflow/blog-gateway/normalize"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// Filename returns the deterministic export file name for an article.
func Filename(post *models.BlogPost) string {
	return fmt.Sprintf("blog-%s.html", post.ID)
}

// Render converts the article's normalized Markdown into a standalone HTML
// page.
func Render(post *models.BlogPost) ([]byte, error) {
	content := normalize.Normalize(post.FinalPost)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return nil, fmt.Errorf("rendering article %s: %w", post.ID, err)
	}

	page := fmt.Sprintf(pageTemplate, html.EscapeString(post.DisplayTitle()), buf.String())
	return []byte(page), nil
}

// WriteFile renders the article and writes it into dir, creating the
// directory if needed. Returns the full path of the written file.
func WriteFile(post *models.BlogPost, dir string) (string, error) {
	page, err := Render(post)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(post))
	if err := os.WriteFile(path, page, 0644); err != nil {
		return "", err
	}
	return path, nil
}
