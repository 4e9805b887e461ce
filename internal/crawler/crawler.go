// Package crawler fetches web pages and extracts their title, text, and
// outgoing links. It is the page-acquisition collaborator of the engine:
// the index never fetches anything itself.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/pgcurious/search-engine/config"
	apperrors "github.com/pgcurious/search-engine/internal/errors"
	"github.com/pgcurious/search-engine/internal/logger"
	"github.com/pgcurious/search-engine/model"
)

// skippedElements are removed from the extracted text: boilerplate and
// non-content markup.
var skippedElements = map[string]struct{}{
	"script": {}, "style": {}, "nav": {}, "footer": {}, "header": {},
}

// Crawler fetches pages breadth-first from seed URLs, respecting a page cap
// and a politeness delay between requests.
type Crawler struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxPages   int
	sameDomain bool
	userAgent  string
	visited    map[string]struct{}
	log        *slog.Logger

	// OnPage, when set, is invoked after each successfully fetched page.
	OnPage func(page model.Page)
}

// New creates a Crawler from configuration.
func New(cfg config.CrawlerConfig) *Crawler {
	return &Crawler{
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Every(cfg.Delay), 1),
		maxPages:   cfg.MaxPages,
		sameDomain: cfg.SameDomain,
		userAgent:  cfg.UserAgent,
		visited:    make(map[string]struct{}),
		log:        logger.WithComponent("crawler"),
	}
}

// Crawl visits pages breadth-first starting from seedURLs until the page
// cap is reached or the frontier is exhausted. Individual fetch failures
// are logged and skipped; the crawl continues with the next URL. The only
// terminal error is context cancellation.
func (c *Crawler) Crawl(ctx context.Context, seedURLs []string) ([]model.Page, error) {
	toVisit := make([]string, 0, len(seedURLs))
	toVisit = append(toVisit, seedURLs...)

	var seedDomain string
	if c.sameDomain && len(seedURLs) > 0 {
		if u, err := url.Parse(seedURLs[0]); err == nil {
			seedDomain = u.Host
		}
	}

	pages := make([]model.Page, 0, c.maxPages)
	for len(toVisit) > 0 && len(pages) < c.maxPages {
		pageURL := toVisit[0]
		toVisit = toVisit[1:]

		if _, seen := c.visited[pageURL]; seen {
			continue
		}
		if seedDomain != "" {
			if u, err := url.Parse(pageURL); err != nil || u.Host != seedDomain {
				continue
			}
		}
		// Mark before fetching so a failing URL is attempted once, no matter
		// how many pages link to it.
		c.visited[pageURL] = struct{}{}

		if err := c.limiter.Wait(ctx); err != nil {
			return pages, err
		}

		c.log.Info("crawling", "url", pageURL, "fetched", len(pages), "max", c.maxPages)
		page, err := c.FetchPage(ctx, pageURL)
		if err != nil {
			c.log.Warn("skipping page", "url", pageURL, "error", err)
			continue
		}

		pages = append(pages, *page)
		if c.OnPage != nil {
			c.OnPage(*page)
		}

		for _, link := range page.Links {
			if _, seen := c.visited[link]; !seen {
				toVisit = append(toVisit, link)
			}
		}
	}

	c.log.Info("crawl complete", "pages", len(pages))
	return pages, nil
}

// FetchPage fetches a single page and extracts its title, text content, and
// absolute outgoing links. Failures are wrapped in a FetchError so callers
// can skip-and-continue.
func (c *Crawler) FetchPage(ctx context.Context, pageURL string) (*model.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(pageURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, apperrors.NewFetchError(pageURL, fmt.Errorf("status %s", resp.Status))
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, apperrors.NewFetchError(pageURL, err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, apperrors.NewFetchError(pageURL, err)
	}

	page := &model.Page{
		URL:     pageURL,
		Title:   extractTitle(root),
		Content: extractText(root),
		Links:   extractLinks(root, base),
	}
	if page.Title == "" {
		page.Title = pageURL
	}
	return page, nil
}

// extractTitle returns the text of the first <title> element.
func extractTitle(root *html.Node) string {
	var title string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(root)
	return title
}

// extractText returns the page's visible text with boilerplate elements
// removed, collapsed to single-space separation.
func extractText(root *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skippedElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return strings.Join(parts, " ")
}

// extractLinks returns all valid absolute http(s) links on the page,
// resolving relative hrefs against base.
func extractLinks(root *html.Node, base *url.URL) []string {
	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				ref, err := url.Parse(attr.Val)
				if err != nil {
					continue
				}
				abs := base.ResolveReference(ref)
				if (abs.Scheme == "http" || abs.Scheme == "https") && abs.Host != "" {
					links = append(links, abs.String())
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return links
}
