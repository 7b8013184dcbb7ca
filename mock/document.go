package mock

import "github.com/fwojciec/hnlist"

var (
	_ hnlist.Document = (*Document)(nil)
	_ hnlist.Element  = (*Element)(nil)
)

// Document is a mock implementation of hnlist.Document.
type Document struct {
	QueryAllFn func(selector string) ([]hnlist.Element, error)
}

func (d *Document) QueryAll(selector string) ([]hnlist.Element, error) {
	return d.QueryAllFn(selector)
}

// Element is a mock implementation of hnlist.Element.
type Element struct {
	QueryOneFn    func(selector string) (hnlist.Element, error)
	QueryAllFn    func(selector string) ([]hnlist.Element, error)
	AttrFn        func(name string) (*string, error)
	TextFn        func() (string, error)
	NextSiblingFn func() (hnlist.Element, error)
}

func (e *Element) QueryOne(selector string) (hnlist.Element, error) {
	return e.QueryOneFn(selector)
}

func (e *Element) QueryAll(selector string) ([]hnlist.Element, error) {
	return e.QueryAllFn(selector)
}

func (e *Element) Attr(name string) (*string, error) {
	return e.AttrFn(name)
}

func (e *Element) Text() (string, error) {
	return e.TextFn()
}

func (e *Element) NextSibling() (hnlist.Element, error) {
	return e.NextSiblingFn()
}
