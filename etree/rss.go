// Package etree reads and writes story listings as RSS 2.0 feeds.
package etree

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/hnlist"
)

// dcNamespace is the Dublin Core namespace used for item authors.
const dcNamespace = "http://purl.org/dc/elements/1.1/"

// dtLayout is the layout of the story timestamp token.
const dtLayout = "2006-01-02T15:04:05"

// FeedOptions describes the feed channel.
type FeedOptions struct {
	Title       string
	Link        string
	Description string
}

// DefaultFeedOptions returns the channel description for front-page feeds.
func DefaultFeedOptions() FeedOptions {
	return FeedOptions{
		Title:       "Hacker News",
		Link:        "https://news.ycombinator.com/",
		Description: "Stories extracted from the Hacker News front page",
	}
}

// WriteRSS writes listing to w as an RSS 2.0 feed with one item per story.
func WriteRSS(w io.Writer, listing *hnlist.Listing, opts FeedOptions) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:dc", dcNamespace)

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(opts.Title)
	channel.CreateElement("link").SetText(opts.Link)
	channel.CreateElement("description").SetText(opts.Description)
	if !listing.GeneratedAt.IsZero() {
		channel.CreateElement("lastBuildDate").SetText(listing.GeneratedAt.UTC().Format(time.RFC1123Z))
	}

	for _, s := range listing.Results {
		writeItem(channel.CreateElement("item"), s)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}
	return nil
}

func writeItem(item *etree.Element, s *hnlist.Story) {
	item.CreateElement("title").SetText(s.Title)
	item.CreateElement("link").SetText(s.URL)
	if s.CommentsURL != nil {
		item.CreateElement("comments").SetText(*s.CommentsURL)
	}

	guid := item.CreateElement("guid")
	if s.ID != "" {
		guid.CreateAttr("isPermaLink", "false")
		guid.SetText(s.ID)
	} else {
		guid.SetText(s.URL)
	}

	if s.Submitter != nil {
		item.CreateElement("dc:creator").SetText(*s.Submitter)
	}
	if s.DT != nil {
		if t, err := time.Parse(dtLayout, *s.DT); err == nil {
			item.CreateElement("pubDate").SetText(t.Format(time.RFC1123Z))
		}
	}
	item.CreateElement("description").SetText(describe(s))
}

// describe summarizes a story's score and discussion.
func describe(s *hnlist.Story) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d points", s.Points)
	if s.Submitter != nil {
		fmt.Fprintf(&sb, " by %s", *s.Submitter)
	}
	fmt.Fprintf(&sb, " | %d comments", s.NumComments)
	return sb.String()
}

// ReadRSS parses a feed written by WriteRSS back into a listing. Only the
// fields carried by the feed are restored; points and comment counts are
// read from the item description.
func ReadRSS(r io.Reader) (*hnlist.Listing, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "parsing feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "rss" {
		return nil, hnlist.Errorf(hnlist.EINVALID, "not an RSS feed")
	}
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "feed has no channel")
	}

	var generatedAt time.Time
	if el := channel.SelectElement("lastBuildDate"); el != nil {
		if t, err := time.Parse(time.RFC1123Z, strings.TrimSpace(el.Text())); err == nil {
			generatedAt = t
		}
	}

	stories := []*hnlist.Story{}
	for i, item := range channel.SelectElements("item") {
		s := readItem(item)
		if err := s.Validate(); err != nil {
			return nil, hnlist.Errorf(hnlist.EINVALID, "feed item %d: %s", i, hnlist.ErrorMessage(err))
		}
		stories = append(stories, s)
	}
	return hnlist.NewListing(stories, generatedAt), nil
}

func readItem(item *etree.Element) *hnlist.Story {
	s := &hnlist.Story{
		Title: childText(item, "title"),
		URL:   childText(item, "link"),
	}
	if guid := item.SelectElement("guid"); guid != nil && guid.SelectAttrValue("isPermaLink", "true") == "false" {
		s.ID = strings.TrimSpace(guid.Text())
	}
	if v := childText(item, "comments"); v != "" {
		s.CommentsURL = &v
	}
	// etree matches the prefixed tag as written.
	if v := childText(item, "dc:creator"); v != "" {
		s.Submitter = &v
	}
	if v := childText(item, "pubDate"); v != "" {
		if t, err := time.Parse(time.RFC1123Z, v); err == nil {
			dt := t.UTC().Format(dtLayout)
			s.DT = &dt
		}
	}
	s.Points, s.NumComments = parseDescription(childText(item, "description"))
	return s
}

// parseDescription recovers the counts written by describe.
func parseDescription(desc string) (points, comments int) {
	head, tail, _ := strings.Cut(desc, "|")
	_, _ = fmt.Sscanf(strings.TrimSpace(head), "%d points", &points)
	_, _ = fmt.Sscanf(strings.TrimSpace(tail), "%d comments", &comments)
	return points, comments
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
