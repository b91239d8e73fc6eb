// extract/sitemap.go
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

// LinksFromSitemap returns the text of every <loc> element in a sitemap or sitemap index.
func LinksFromSitemap(r io.Reader) ([]string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sitemap: %w", err)
	}

	var links []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.ElementNode && n.Data == "loc" {
			links = append(links, strings.TrimSpace(n.InnerText()))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return dedupe(links), nil
}
