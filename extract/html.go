// extract/html.go
package extract

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// linkAttributes lists the attributes that carry URLs worth inspecting.
var linkAttributes = map[string]bool{
	"href":   true,
	"src":    true,
	"action": true,
}

// LinksFromHTML returns every distinct href, src and action attribute value in the document, in document order.
func LinksFromHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}

	var links []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if linkAttributes[attr.Key] {
					links = append(links, strings.TrimSpace(attr.Val))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return dedupe(links), nil
}
