// Package fetch retrieves job postings from URLs and reduces them to plain
// text so they can be fed to the skills-match scorer.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a single job-posting fetch.
const DefaultTimeout = 15 * time.Second

// defaultUserAgent identifies the analyzer to job boards.
const defaultUserAgent = "Mozilla/5.0 (compatible; ResumeAnalyzer/1.0)"

// jobPostingSelectors are tried in order before falling back to <body>.
var jobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// Error wraps a failed fetch with the URL that caused it.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// JobDescription downloads the page at urlStr and returns its main text.
// The result is best-effort; callers treat failures as "no job description
// provided" rather than surfacing them to the client.
func JobDescription(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	text, err := mainText(string(body))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}
	return text, nil
}

// mainText strips noise elements and returns the text of the first matching
// content selector, falling back to the whole body.
func mainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	var content *goquery.Selection
	for _, selector := range jobPostingSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

var blankRuns = regexp.MustCompile(`[ \t]+`)

func cleanWhitespace(s string) string {
	s = blankRuns.ReplaceAllString(s, " ")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
