package htmltomarkdown

import (
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/clipper"
	"gopkg.in/yaml.v3"
)

// Ensure Converter implements clipper.Converter at compile time.
var _ clipper.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", clipper.Errorf(clipper.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// frontmatter is the YAML header of a rendered result.
type frontmatter struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Published   string `yaml:"published,omitempty"`
	SiteName    string `yaml:"site,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Words       int    `yaml:"words"`
	ReadingTime int    `yaml:"readingTime"`
	Method      string `yaml:"method,omitempty"`
	ExtractedAt string `yaml:"extractedAt,omitempty"`
}

// Render writes a result as a Markdown document with a YAML frontmatter.
// The body is the content markup converted to Markdown, or the plain text
// when the result carries no markup.
func (c *Converter) Render(r *clipper.ExtractionResult) (string, error) {
	body := r.TextContent
	if strings.TrimSpace(r.Content) != "" {
		md, err := c.Convert(r.Content)
		if err != nil {
			return "", err
		}
		body = md
	}

	author := r.Byline
	if author == "" {
		author = r.Author
	}
	fm := frontmatter{
		Title:       r.Title,
		URL:         r.URL,
		Author:      author,
		Published:   r.PublishedDate,
		SiteName:    r.SiteName,
		Language:    r.Language,
		Words:       r.WordCount,
		ReadingTime: r.ReadingTime,
		Method:      string(r.Method),
	}
	if !r.ExtractedAt.IsZero() {
		fm.ExtractedAt = r.ExtractedAt.Format(time.RFC3339)
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	if r.Title != "" {
		b.WriteString("# " + r.Title + "\n\n")
	}
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}
