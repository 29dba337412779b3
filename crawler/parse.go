package crawler

import (
	"strings"

	"golang.org/x/net/html"
)

// Minimal selector helpers over the x/net/html node tree. The engines only
// ever need "elements with tag X" and "elements carrying class Y", so a CSS
// engine would be dead weight.

// matcher reports whether an element node is wanted.
type matcher func(*html.Node) bool

// byTag matches element nodes with the given tag name.
func byTag(tag string) matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// byClass matches element nodes carrying any of the given class names.
func byClass(classes ...string) matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, field := range strings.Fields(attr(n, "class")) {
			for _, class := range classes {
				if field == class {
					return true
				}
			}
		}
		return false
	}
}

// findAll walks the subtree in document order and collects matching nodes.
// Matching nodes' subtrees are not descended into, mirroring how result
// items never nest inside each other.
func findAll(n *html.Node, match matcher) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			nodes = append(nodes, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return nodes
}

// findFirst returns the first matching node in document order, or nil.
func findFirst(n *html.Node, match matcher) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// tagWithinClass matches tag elements that have an ancestor carrying the
// class, e.g. the "p" inside Bing's "b_caption" container.
func tagWithinClass(tag, class string) matcher {
	hasClass := byClass(class)
	isTag := byTag(tag)
	return func(n *html.Node) bool {
		if !isTag(n) {
			return false
		}
		for p := n.Parent; p != nil; p = p.Parent {
			if hasClass(p) {
				return true
			}
		}
		return false
	}
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// text returns the concatenated, whitespace-trimmed text content of the
// subtree.
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// extractHit pulls one Result out of a result item node: the title from the
// heading, the link from the heading's anchor, and the summary from the
// first node matching summaryMatch. Returns false when the item has no
// usable heading or link.
func extractHit(item *html.Node, headingTag string, summaryMatch matcher) (Result, bool) {
	heading := findFirst(item, byTag(headingTag))
	if heading == nil {
		return Result{}, false
	}
	link := findFirst(heading, byTag("a"))
	if link == nil {
		return Result{}, false
	}
	href := attr(link, "href")
	if href == "" {
		return Result{}, false
	}

	summary := ""
	if s := findFirst(item, summaryMatch); s != nil {
		summary = text(s)
	}

	return Result{
		Title:   text(heading),
		Summary: summary,
		URL:     href,
	}, true
}
