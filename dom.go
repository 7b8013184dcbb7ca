package hnlist

// Element is a single node of a loaded HTML document.
//
// Implementations report absence with nil values rather than errors: a
// selector that matches nothing yields a nil Element, a missing attribute a
// nil string. Errors are reserved for failures of the underlying provider,
// such as a browser page that has gone away.
type Element interface {
	// QueryOne returns the first descendant matching the CSS selector,
	// or nil if there is none.
	QueryOne(selector string) (Element, error)

	// QueryAll returns every descendant matching the CSS selector,
	// in document order.
	QueryAll(selector string) ([]Element, error)

	// Attr returns the value of the named attribute, or nil if the
	// attribute is not present.
	Attr(name string) (*string, error)

	// Text returns the visible text content of the element.
	Text() (string, error)

	// NextSibling returns the next element sibling, skipping text and
	// comment nodes, or nil if the element is the last child.
	NextSibling() (Element, error)
}

// Document is a loaded HTML document.
type Document interface {
	// QueryAll returns every element matching the CSS selector,
	// in document order.
	QueryAll(selector string) ([]Element, error)
}

// ListingExtractor turns a loaded front page into story records.
type ListingExtractor interface {
	// Extract returns one story per story row, in document order.
	// Returns ESTRUCTURE if the document contains no story rows or a
	// row lacks its title link.
	Extract(doc Document) ([]*Story, error)
}
