// extract/extract.go

/* Package extract harvests URLs from HTML documents and XML sitemaps and runs each of
them through the query parser. */

package extract

import (
	"github.com/deploymenttheory/go-api-http-params/params"
	"github.com/deploymenttheory/go-api-http-params/query"
)

// Result pairs a link with the parameters found in its query string.
type Result struct {
	URL    string      `json:"url"`
	Params *params.Map `json:"params"`
}

// QueryParams parses the query string of every link. Links without parameters are skipped.
func QueryParams(links []string, opts ...query.Option) []Result {
	results := make([]Result, 0, len(links))
	for _, link := range links {
		p := query.ParseWithOptions(link, opts...)
		if p.Len() == 0 {
			continue
		}
		results = append(results, Result{URL: link, Params: p})
	}
	return results
}

// dedupe removes empty and repeated links, keeping first-seen order.
func dedupe(links []string) []string {
	seen := make(map[string]bool, len(links))
	out := make([]string, 0, len(links))
	for _, l := range links {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
