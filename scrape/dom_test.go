package scrape_test

import (
	"slices"
	"strings"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/mock"
)

// node is a minimal in-memory element tree. It supports the selector forms
// the extractor uses: ".class", "tag", and descendant combinations of them.
type node struct {
	tag      string
	classes  []string
	attrs    map[string]string
	text     string
	children []*node
	parent   *node
}

func newNode(tag, class string, attrs map[string]string, text string, children ...*node) *node {
	n := &node{tag: tag, classes: strings.Fields(class), attrs: attrs, text: text, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *node) matches(part string) bool {
	if cls, ok := strings.CutPrefix(part, "."); ok {
		return slices.Contains(n.classes, cls)
	}
	return n.tag == part
}

// query returns descendants of n matching a descendant selector, in
// document order.
func (n *node) query(selector string) []*node {
	parts := strings.Fields(selector)
	var out []*node
	var walk func(*node)
	walk = func(cur *node) {
		for _, c := range cur.children {
			if c.matches(parts[len(parts)-1]) && c.hasAncestors(n, parts[:len(parts)-1]) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// hasAncestors reports whether parts match, in order, ancestors of n
// between n and scope inclusive.
func (n *node) hasAncestors(scope *node, parts []string) bool {
	i := len(parts) - 1
	for cur := n.parent; cur != nil && i >= 0; cur = cur.parent {
		if cur.matches(parts[i]) {
			i--
		}
		if cur == scope {
			break
		}
	}
	return i < 0
}

func (n *node) textContent() string {
	var sb strings.Builder
	sb.WriteString(n.text)
	for _, c := range n.children {
		sb.WriteString(c.textContent())
	}
	return sb.String()
}

func (n *node) element() *mock.Element {
	return &mock.Element{
		QueryOneFn: func(selector string) (hnlist.Element, error) {
			found := n.query(selector)
			if len(found) == 0 {
				return nil, nil
			}
			return found[0].element(), nil
		},
		QueryAllFn: func(selector string) ([]hnlist.Element, error) {
			var elems []hnlist.Element
			for _, f := range n.query(selector) {
				elems = append(elems, f.element())
			}
			return elems, nil
		},
		AttrFn: func(name string) (*string, error) {
			v, ok := n.attrs[name]
			if !ok {
				return nil, nil
			}
			return &v, nil
		},
		TextFn: func() (string, error) {
			return n.textContent(), nil
		},
		NextSiblingFn: func() (hnlist.Element, error) {
			if n.parent == nil {
				return nil, nil
			}
			siblings := n.parent.children
			i := slices.Index(siblings, n)
			if i+1 >= len(siblings) {
				return nil, nil
			}
			return siblings[i+1].element(), nil
		},
	}
}

func (n *node) document() *mock.Document {
	root := n.element()
	return &mock.Document{QueryAllFn: root.QueryAll}
}

// row describes one story in a synthetic front page. Empty fields are left
// out of the generated markup.
type row struct {
	thingID  string
	title    string
	href     string
	noLink   bool
	noMeta   bool
	score    string
	user     string
	ageTitle string
	ageHref  string
	links    []string
}

func (r row) nodes() []*node {
	var title *node
	if !r.noLink {
		title = newNode("span", "titleline", nil, "",
			newNode("a", "", map[string]string{"href": r.href}, r.title),
		)
	} else {
		title = newNode("span", "titleline", nil, r.title)
	}
	attrs := map[string]string{}
	if r.thingID != "" {
		attrs["id"] = r.thingID
	}
	story := newNode("tr", "athing", attrs, "", newNode("td", "title", nil, "", title))
	if r.noMeta {
		return []*node{story}
	}

	var sub []*node
	if r.score != "" {
		sub = append(sub, newNode("span", "score", nil, r.score))
	}
	if r.user != "" {
		sub = append(sub, newNode("a", "hnuser", map[string]string{"href": "user?id=" + r.user}, r.user))
	}
	if r.ageTitle != "" || r.ageHref != "" {
		var link []*node
		if r.ageHref != "" {
			link = append(link, newNode("a", "", map[string]string{"href": r.ageHref}, "1 hour ago"))
		}
		attrs := map[string]string{}
		if r.ageTitle != "" {
			attrs["title"] = r.ageTitle
		}
		sub = append(sub, newNode("span", "age", attrs, "", link...))
	}
	for _, text := range r.links {
		sub = append(sub, newNode("a", "", map[string]string{"href": r.ageHref}, text))
	}
	meta := newNode("tr", "", nil, "", newNode("td", "subtext", nil, "", sub...))
	spacer := newNode("tr", "spacer", nil, "")
	return []*node{story, meta, spacer}
}

func page(rows ...row) *mock.Document {
	var trs []*node
	for _, r := range rows {
		trs = append(trs, r.nodes()...)
	}
	return newNode("table", "", nil, "", trs...).document()
}
