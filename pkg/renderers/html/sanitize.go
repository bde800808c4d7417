package html

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const doctype = "<!DOCTYPE html>\n"

// printPolicy allows the page structure a record template needs and nothing
// that runs in the print browser: scripts, event handlers, links and embeds
// are dropped.
func printPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"html", "head", "body", "title", "style",
		"h1", "h2", "h3", "p", "div", "span", "b", "strong", "em", "br",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("charset").OnElements("meta")
	p.AllowAttrs("id", "class").Globally()
	p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
	p.AllowDataAttributes()
	// style elements carry the stylesheet and theme variables.
	p.AllowUnsafe(true)
	return p
}

// sanitizePage applies policy to a rendered page. The doctype is always
// stripped by the sanitizer, so it is restored here.
func sanitizePage(policy *bluemonday.Policy, page string) string {
	body := strings.TrimPrefix(strings.TrimSpace(page), "<!DOCTYPE html>")
	return doctype + strings.TrimLeft(policy.Sanitize(body), "\n")
}
