package rod

import (
	"errors"

	"github.com/fwojciec/hnlist"
	"github.com/go-rod/rod"
)

// Ensure Document and Element implement the DOM provider interfaces.
var (
	_ hnlist.Document = (*Document)(nil)
	_ hnlist.Element  = (*Element)(nil)
)

// Document exposes a live browser page to the extractor. Lookups never wait
// for elements to appear; the page is expected to be fully loaded.
type Document struct {
	page *rod.Page
}

// NewDocument creates a Document backed by page.
func NewDocument(page *rod.Page) *Document {
	return &Document{page: page}
}

// QueryAll returns every element matching selector, in document order.
func (d *Document) QueryAll(selector string) ([]hnlist.Element, error) {
	els, err := d.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrap(els), nil
}

// Element is a node of a live browser page.
type Element struct {
	el *rod.Element
}

// QueryOne returns the first descendant matching selector, or nil.
func (e *Element) QueryOne(selector string) (hnlist.Element, error) {
	has, found, err := e.el.Has(selector)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	return &Element{el: found}, nil
}

// QueryAll returns every descendant matching selector, in document order.
func (e *Element) QueryAll(selector string) ([]hnlist.Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrap(els), nil
}

// Attr returns the named attribute, or nil if it is not set.
func (e *Element) Attr(name string) (*string, error) {
	return e.el.Attribute(name)
}

// Text returns the rendered text of the element.
func (e *Element) Text() (string, error) {
	return e.el.Text()
}

// NextSibling returns the next element sibling, or nil.
func (e *Element) NextSibling() (hnlist.Element, error) {
	next, err := e.el.Next()
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Element{el: next}, nil
}

func wrap(els rod.Elements) []hnlist.Element {
	out := make([]hnlist.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &Element{el: el})
	}
	return out
}
