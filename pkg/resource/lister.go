package resource

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/errors"
	"github.com/glorpus-work/artfetch/pkg/transport"
)

// List fetches parent, expected to be an HTML directory index, and returns
// the absolute URLs of its entries. A nil slice (with nil error) means parent
// is not a listable index; an empty non-nil slice means a valid but empty
// directory. Unsuccessful statuses other than 404 are a *errors.StatusError.
func (a *Accessor) List(ctx context.Context, parent string) ([]string, error) {
	base, err := url.Parse(parent)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidURL, "%s", parent)
	}
	// Resolving relative hrefs against "/dir" would drop the last path
	// segment; a directory base always ends in a slash.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	resp, err := a.transport.Do(ctx, transport.Request{Method: http.MethodGet, URL: parent})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		logger.Info("Directory index missing", logger.Fields{"url": parent})
		return nil, nil
	}
	if !wasSuccessful(resp.StatusCode) {
		return nil, &errors.StatusError{Verb: http.MethodGet, URL: parent, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") {
		logger.Debugf("Not a listable index (content type %s): %s", contentType, parent)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logger.Debugf("Failed to parse index page %s: %v", parent, err)
		return nil, nil
	}

	return collectEntries(doc, base), nil
}

// collectEntries extracts directory entries from the anchors of an index
// page, resolving relative hrefs against the parent URL. Sort/query links and
// anything pointing outside the parent (".." and absolute navigation) are
// skipped.
func collectEntries(doc *goquery.Document, base *url.URL) []string {
	parentPrefix := base.String()
	if !strings.HasSuffix(parentPrefix, "/") {
		parentPrefix += "/"
	}

	entries := []string{}
	seen := map[string]bool{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil || ref.Fragment != "" || ref.RawQuery != "" {
			return
		}
		abs := base.ResolveReference(ref).String()
		if abs == parentPrefix || !strings.HasPrefix(abs, parentPrefix) {
			return
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		entries = append(entries, abs)
	})
	return entries
}
