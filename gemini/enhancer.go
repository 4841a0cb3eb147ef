// Package gemini implements the enhancement stage using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/clipper"
	"google.golang.org/genai"
)

// DefaultModel is the model used when Enhancer.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// DefaultMaxContentChars bounds the content sent with each request.
const DefaultMaxContentChars = 50000

// Ensure Enhancer implements clipper.Enhancer at compile time.
var _ clipper.Enhancer = (*Enhancer)(nil)

// Enhancer implements clipper.Enhancer using Google Gemini.
type Enhancer struct {
	client    *genai.Client
	converter clipper.Converter

	Model           string
	MaxContentChars int
}

// NewEnhancer creates a new Enhancer. The converter renders the content
// markup as Markdown for the prompt; when nil, plain text is sent.
func NewEnhancer(client *genai.Client, converter clipper.Converter) *Enhancer {
	return &Enhancer{
		client:          client,
		converter:       converter,
		Model:           DefaultModel,
		MaxContentChars: DefaultMaxContentChars,
	}
}

// Enhance returns Gemini's rendition of the result in the given mode.
func (e *Enhancer) Enhance(ctx context.Context, result *clipper.ExtractionResult, mode clipper.EnhancementMode) (string, error) {
	if result == nil || strings.TrimSpace(result.TextContent) == "" {
		return "", clipper.Errorf(clipper.EINVALID, "no content to enhance")
	}
	if err := mode.Validate(); err != nil {
		return "", err
	}
	if e.client == nil {
		return "", clipper.Errorf(clipper.EUNAVAILABLE, "gemini client not configured")
	}

	prompt := BuildUserPrompt(result, e.body(result), e.MaxContentChars)

	model := e.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(mode),
	)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", clipper.Errorf(clipper.EINTERNAL, "gemini returned nil result")
	}

	return resp.Text(), nil
}

// body returns the Markdown form of the content, falling back to the text.
func (e *Enhancer) body(result *clipper.ExtractionResult) string {
	if e.converter != nil && result.Content != "" {
		if md, err := e.converter.Convert(result.Content); err == nil && strings.TrimSpace(md) != "" {
			return md
		}
	}
	return result.TextContent
}

// BuildConfig returns the GenerateContentConfig for the given mode.
func BuildConfig(mode clipper.EnhancementMode) *genai.GenerateContentConfig {
	temp := float32(0.4)
	instruction := "You are an editor summarizing web articles. Write a concise summary of the article " +
		"in Markdown: a one-paragraph overview followed by the key points as a bulleted list. " +
		"Use only information from the article."
	if mode == clipper.EnhanceRewrite {
		temp = 0.7
		instruction = "You are an editor rewriting web articles for readability. Rewrite the article " +
			"in clear, well-structured Markdown with headings where useful. Preserve every fact, " +
			"figure and quotation. Do not add information that is not in the article."
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the article. The body is
// cut to maxChars runes when maxChars is positive.
func BuildUserPrompt(result *clipper.ExtractionResult, body string, maxChars int) string {
	if maxChars > 0 {
		body = clipper.Prefix(body, maxChars)
	}

	title := result.Title
	if title == "" {
		title = result.URL
	}

	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	fmt.Fprintf(&sb, "<source>%s</source>\n", result.URL)
	if result.Byline != "" {
		fmt.Fprintf(&sb, "<byline>%s</byline>\n", result.Byline)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", body)
	sb.WriteString("</article>")
	return sb.String()
}
