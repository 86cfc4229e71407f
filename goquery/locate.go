package goquery

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"github.com/erayd/readable"
	"golang.org/x/net/html"
)

// coverage is the share of qualifying words, in percent, that the chosen
// container must hold before the search stops widening.
const coverage = 70

// nonProse lists elements whose text never counts as evidence of prose.
var nonProse = map[string]bool{
	"a":      true,
	"script": true,
	"form":   true,
	"select": true,
}

// locateContainer finds the node that most tightly bounds the main content
// below the node named by hint.
func locateContainer(root *html.Node, hint string) (*html.Node, error) {
	start, err := resolve(root, hint)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]int)
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if words, ok := qualifies(c.Data); ok {
					groups[nodePath(c.Parent)] += words
				}
			case html.ElementNode:
				if !nonProse[c.Data] {
					visit(c)
				}
			}
		}
	}
	visit(start)

	if len(groups) == 0 {
		return start, nil
	}
	return resolve(root, coarsen(groups))
}

// resolve returns the element or document node at the XPath address.
func resolve(root *html.Node, address string) (*html.Node, error) {
	n, err := htmlquery.Query(root, address)
	if err != nil {
		return nil, readable.Errorf(readable.ENOCONTAINER, "invalid container path %q: %v", address, err)
	}
	if n == nil || (n.Type != html.ElementNode && n.Type != html.DocumentNode) {
		return nil, readable.Errorf(readable.ENOCONTAINER, "container %q not found", address)
	}
	return n, nil
}

// coarsen widens word-count groups until one holds at least the coverage
// share of all words, and returns its address. The group widened on each
// step is the one sorting last by ascending (words, address).
func coarsen(groups map[string]int) string {
	for len(groups) > 1 {
		address, words, total := largest(groups)
		if words*100 >= total*coverage {
			return address
		}

		parent := parentPath(address)
		merged := 0
		for addr, n := range groups {
			if within(addr, parent) {
				merged += n
				delete(groups, addr)
			}
		}
		groups[parent] = merged
	}

	for address := range groups {
		return address
	}
	return ""
}

// largest returns the group sorting last by ascending (words, address),
// along with the total word count of all groups.
func largest(groups map[string]int) (address string, words, total int) {
	addresses := make([]string, 0, len(groups))
	for addr, n := range groups {
		addresses = append(addresses, addr)
		total += n
	}
	slices.SortStableFunc(addresses, func(a, b string) int {
		if groups[a] != groups[b] {
			return groups[a] - groups[b]
		}
		return strings.Compare(a, b)
	})
	address = addresses[len(addresses)-1]
	return address, groups[address], total
}

// parentPath returns the address one level above path.
func parentPath(path string) string {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return "/"
	}
	return path[:i]
}

// within reports whether path is at or below ancestor.
func within(path, ancestor string) bool {
	if ancestor == "/" {
		return true
	}
	return path == ancestor || strings.HasPrefix(path, ancestor+"/")
}

// qualifies reports whether text is long and wordy enough to count as prose,
// and returns its word count.
func qualifies(text string) (int, bool) {
	words := countWords(text)
	length := utf8.RuneCountInString(text)
	if words > 2 && length > 20 && length >= 3*words {
		return words, true
	}
	return words, false
}

// countWords counts runs of letters, which may contain but not start with
// apostrophes and hyphens.
func countWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			if !inWord {
				count++
				inWord = true
			}
		case inWord && (r == '\'' || r == '-'):
		default:
			inWord = false
		}
	}
	return count
}

// nodePath returns the XPath address of an element, with a position
// predicate only where same-named siblings exist.
func nodePath(n *html.Node) string {
	var segments []string
	for ; n != nil && n.Type == html.ElementNode; n = n.Parent {
		segments = append(segments, pathSegment(n))
	}
	if len(segments) == 0 {
		return "/"
	}
	slices.Reverse(segments)
	return "/" + strings.Join(segments, "/")
}

func pathSegment(n *html.Node) string {
	if n.Parent == nil {
		return n.Data
	}
	position, total := 0, 0
	for s := n.Parent.FirstChild; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == n.Data {
			total++
			if s == n {
				position = total
			}
		}
	}
	if total > 1 {
		return fmt.Sprintf("%s[%d]", n.Data, position)
	}
	return n.Data
}
