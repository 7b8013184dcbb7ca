// Package goquery provides the DOM provider for saved HTML pages.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/hnlist"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Document and Element implement the DOM provider interfaces.
var (
	_ hnlist.Document = (*Document)(nil)
	_ hnlist.Element  = (*Element)(nil)
)

// Document is a parsed, static HTML document.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML from r. The character encoding is detected from
// the byte order mark or a <meta> declaration, defaulting to UTF-8.
func NewDocument(r io.Reader) (*Document, error) {
	utf8, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "failed to detect encoding: %v", err)
	}
	root, err := html.Parse(utf8)
	if err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// ParseHTML parses an HTML string.
func ParseHTML(s string) (*Document, error) {
	return NewDocument(strings.NewReader(s))
}

// QueryAll returns every element matching selector, in document order.
func (d *Document) QueryAll(selector string) ([]hnlist.Element, error) {
	return queryAll(d.doc.Selection, selector)
}

// Element is a single node of a Document.
type Element struct {
	sel *goquery.Selection
}

// QueryOne returns the first descendant matching selector, or nil.
func (e *Element) QueryOne(selector string) (hnlist.Element, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	found := e.sel.FindMatcher(m).First()
	if found.Length() == 0 {
		return nil, nil
	}
	return &Element{sel: found}, nil
}

// QueryAll returns every descendant matching selector, in document order.
func (e *Element) QueryAll(selector string) ([]hnlist.Element, error) {
	return queryAll(e.sel, selector)
}

// Attr returns the named attribute, or nil if it is not set.
func (e *Element) Attr(name string) (*string, error) {
	v, ok := e.sel.Attr(name)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// Text returns the combined text of the element and its descendants.
func (e *Element) Text() (string, error) {
	return e.sel.Text(), nil
}

// NextSibling returns the next element sibling, or nil.
func (e *Element) NextSibling() (hnlist.Element, error) {
	next := e.sel.Next()
	if next.Length() == 0 {
		return nil, nil
	}
	return &Element{sel: next}, nil
}

func queryAll(sel *goquery.Selection, selector string) ([]hnlist.Element, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	found := sel.FindMatcher(m)
	elems := make([]hnlist.Element, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{sel: s})
	})
	return elems, nil
}

// compile parses a CSS selector. goquery's string-based Find silently
// matches nothing on a bad selector; here it is an EINVALID error.
func compile(selector string) (goquery.Matcher, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return m, nil
}
