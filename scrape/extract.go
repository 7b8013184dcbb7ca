// Package scrape extracts story records from Hacker News front pages.
package scrape

import (
	"net/url"
	"strings"

	"github.com/fwojciec/hnlist"
)

// DefaultBaseURL is the URL relative links on a front page resolve against.
const DefaultBaseURL = "https://news.ycombinator.com/"

// Selectors for the front-page markup.
const (
	storyRowSelector  = ".athing"
	titleLinkSelector = ".titleline a"
	scoreSelector     = ".score"
	ageSelector       = ".age"
	ageLinkSelector   = ".age a"
	userSelector      = ".hnuser"
	linkSelector      = "a"
)

// rowIDPrefix is stripped from a story row's id attribute to form the story ID.
const rowIDPrefix = "thing_"

// Ensure Extractor implements hnlist.ListingExtractor at compile time.
var _ hnlist.ListingExtractor = (*Extractor)(nil)

// Extractor implements hnlist.ListingExtractor for the front-page markup.
// Extractor holds no state between calls and is safe for concurrent use.
type Extractor struct {
	// BaseURL resolves relative links. Defaults to DefaultBaseURL.
	BaseURL string
}

// NewExtractor creates an Extractor that resolves links against DefaultBaseURL.
func NewExtractor() *Extractor {
	return &Extractor{BaseURL: DefaultBaseURL}
}

// Extract returns one story per story row, in document order.
//
// Returns ESTRUCTURE if the document has no story rows or if a row has no
// usable title link. Missing metadata degrades to absent fields and zero
// counts. Errors from the document provider are returned unchanged.
func (e *Extractor) Extract(doc hnlist.Document) ([]*hnlist.Story, error) {
	baseURL := e.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "invalid base URL: %v", err)
	}

	rows, err := doc.QueryAll(storyRowSelector)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, hnlist.Errorf(hnlist.ESTRUCTURE, "no stories found")
	}

	stories := make([]*hnlist.Story, 0, len(rows))
	for i, row := range rows {
		story, err := extractRow(base, i, row)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, nil
}

func extractRow(base *url.URL, index int, row hnlist.Element) (*hnlist.Story, error) {
	rowID, err := row.Attr("id")
	if err != nil {
		return nil, err
	}
	thingID := ""
	if rowID != nil {
		thingID = strings.TrimPrefix(*rowID, rowIDPrefix)
	}

	link, err := row.QueryOne(titleLinkSelector)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, hnlist.Errorf(hnlist.ESTRUCTURE, "story row %d (id %q) has no title link", index, thingID)
	}
	title, err := link.Text()
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, hnlist.Errorf(hnlist.ESTRUCTURE, "story row %d (id %q) has an empty title", index, thingID)
	}
	href, err := link.Attr("href")
	if err != nil {
		return nil, err
	}
	if href == nil {
		return nil, hnlist.Errorf(hnlist.ESTRUCTURE, "story row %d (id %q) title link has no href", index, thingID)
	}

	story := &hnlist.Story{
		Title: title,
		URL:   resolveURL(base, *href),
	}

	meta, err := row.NextSibling()
	if err != nil {
		return nil, err
	}
	if meta != nil {
		if err := extractMeta(base, meta, story); err != nil {
			return nil, err
		}
	}

	story.ID = storyID(story.CommentsURL, thingID)
	return story, nil
}

// extractMeta fills the fields carried by the metadata row.
func extractMeta(base *url.URL, meta hnlist.Element, story *hnlist.Story) error {
	score, err := optionalText(meta, scoreSelector)
	if err != nil {
		return err
	}
	if score != nil {
		story.Points = LeadingInt(*score)
	}

	age, err := meta.QueryOne(ageSelector)
	if err != nil {
		return err
	}
	if age != nil {
		stamp, err := age.Attr("title")
		if err != nil {
			return err
		}
		if stamp != nil {
			if fields := strings.Fields(*stamp); len(fields) > 0 {
				story.DT = &fields[0]
			}
		}
	}

	story.Submitter, err = optionalText(meta, userSelector)
	if err != nil {
		return err
	}

	ageLink, err := meta.QueryOne(ageLinkSelector)
	if err != nil {
		return err
	}
	if ageLink != nil {
		href, err := ageLink.Attr("href")
		if err != nil {
			return err
		}
		if href != nil && strings.TrimSpace(*href) != "" {
			u := resolveURL(base, *href)
			story.CommentsURL = &u
		}
	}

	links, err := meta.QueryAll(linkSelector)
	if err != nil {
		return err
	}
	for _, l := range links {
		text, err := l.Text()
		if err != nil {
			return err
		}
		if strings.Contains(text, "comment") {
			story.NumComments = LeadingInt(text)
			break
		}
	}
	return nil
}

// optionalText returns the trimmed text of the first match of selector
// within el, or nil if there is no match or the text is empty.
func optionalText(el hnlist.Element, selector string) (*string, error) {
	found, err := el.QueryOne(selector)
	if err != nil || found == nil {
		return nil, err
	}
	text, err := found.Text()
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// storyID prefers the id query parameter of the comments URL and falls back
// to the story row's own identifier.
func storyID(commentsURL *string, thingID string) string {
	if commentsURL != nil {
		if u, err := url.Parse(*commentsURL); err == nil {
			if id := u.Query().Get("id"); id != "" {
				return id
			}
		}
	}
	return thingID
}

// resolveURL resolves href against base the way a browser computes an
// anchor's href property. Unparseable hrefs are returned as given.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
