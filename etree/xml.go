// Package etree renders extraction results as XML.
package etree

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/clipper"
)

// Encode writes a result as an indented XML document rooted at <article>.
func Encode(r *clipper.ExtractionResult) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("article")
	root.CreateAttr("method", string(r.Method))
	if !r.ExtractedAt.IsZero() {
		root.CreateAttr("extractedAt", r.ExtractedAt.UTC().Format(time.RFC3339))
	}

	meta := root.CreateElement("metadata")
	text(meta, "title", r.Title)
	text(meta, "url", r.URL)
	text(meta, "canonicalUrl", r.CanonicalURL)
	text(meta, "description", r.Description)
	text(meta, "author", r.Author)
	text(meta, "byline", r.Byline)
	text(meta, "publishedDate", r.PublishedDate)
	text(meta, "modifiedDate", r.ModifiedDate)
	text(meta, "siteName", r.SiteName)
	text(meta, "language", r.Language)
	text(meta, "keywords", r.Keywords)

	stats := root.CreateElement("stats")
	stats.CreateAttr("words", strconv.Itoa(r.WordCount))
	stats.CreateAttr("readingTime", strconv.Itoa(r.ReadingTime))
	stats.CreateAttr("length", strconv.Itoa(r.Length))

	text(root, "excerpt", r.Excerpt)
	root.CreateElement("content").CreateCData(r.Content)
	root.CreateElement("text").SetText(r.TextContent)

	images := root.CreateElement("images")
	for _, img := range r.Images {
		el := images.CreateElement("image")
		el.CreateAttr("src", img.Src)
		attr(el, "alt", img.Alt)
		attr(el, "title", img.Title)
		if img.Width > 0 {
			el.CreateAttr("width", strconv.Itoa(img.Width))
		}
		if img.Height > 0 {
			el.CreateAttr("height", strconv.Itoa(img.Height))
		}
	}

	links := root.CreateElement("links")
	for _, l := range r.Links {
		el := links.CreateElement("link")
		el.CreateAttr("href", l.Href)
		attr(el, "title", l.Title)
		el.SetText(l.Text)
	}

	doc.Indent(2)
	return doc.WriteToString()
}

// Decode reads a document written by Encode.
func Decode(s string) (*clipper.ExtractionResult, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, clipper.Errorf(clipper.EINVALID, "invalid result XML: %v", err)
	}

	root := doc.SelectElement("article")
	if root == nil {
		return nil, clipper.Errorf(clipper.EINVALID, "result XML has no article element")
	}

	r := &clipper.ExtractionResult{
		Method: clipper.Method(root.SelectAttrValue("method", "")),
		Images: []clipper.ImageRef{},
		Links:  []clipper.LinkRef{},
	}
	if at := root.SelectAttrValue("extractedAt", ""); at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, clipper.Errorf(clipper.EINVALID, "invalid extractedAt %q", at)
		}
		r.ExtractedAt = t
	}

	if meta := root.SelectElement("metadata"); meta != nil {
		r.Title = childText(meta, "title")
		r.URL = childText(meta, "url")
		r.CanonicalURL = childText(meta, "canonicalUrl")
		r.Description = childText(meta, "description")
		r.Author = childText(meta, "author")
		r.Byline = childText(meta, "byline")
		r.PublishedDate = childText(meta, "publishedDate")
		r.ModifiedDate = childText(meta, "modifiedDate")
		r.SiteName = childText(meta, "siteName")
		r.Language = childText(meta, "language")
		r.Keywords = childText(meta, "keywords")
	}

	if stats := root.SelectElement("stats"); stats != nil {
		r.WordCount = intAttr(stats, "words")
		r.ReadingTime = intAttr(stats, "readingTime")
		r.Length = intAttr(stats, "length")
	}

	r.Excerpt = childText(root, "excerpt")
	r.Content = childText(root, "content")
	r.TextContent = childText(root, "text")

	if images := root.SelectElement("images"); images != nil {
		for _, el := range images.SelectElements("image") {
			r.Images = append(r.Images, clipper.ImageRef{
				Src:    el.SelectAttrValue("src", ""),
				Alt:    el.SelectAttrValue("alt", ""),
				Title:  el.SelectAttrValue("title", ""),
				Width:  intAttr(el, "width"),
				Height: intAttr(el, "height"),
			})
		}
	}

	if links := root.SelectElement("links"); links != nil {
		for _, el := range links.SelectElements("link") {
			r.Links = append(r.Links, clipper.LinkRef{
				Href:  el.SelectAttrValue("href", ""),
				Text:  strings.TrimSpace(el.Text()),
				Title: el.SelectAttrValue("title", ""),
			})
		}
	}

	return r, nil
}

// text adds a child element holding s, skipping empty values.
func text(parent *etree.Element, tag, s string) {
	if s == "" {
		return
	}
	parent.CreateElement(tag).SetText(s)
}

func attr(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}

func childText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return el.Text()
}

func intAttr(el *etree.Element, key string) int {
	n, _ := strconv.Atoi(el.SelectAttrValue(key, "0"))
	return n
}
