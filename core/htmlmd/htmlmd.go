// Package htmlmd converts the restricted HTML emitted by chat-page
// exports into Markdown.
//
// Supported: headings h1-h6, p/br, ul/ol/li, hr, bold/italic/del,
// links, blockquotes, tables, sup, inline <code>, and <pre> fenced
// code blocks with an optional language label.
//
// The engine traverses the parse tree read-only. List-nesting state
// lives on a stack created fresh per Convert call, so concurrent
// calls on independent trees need no synchronization.
package htmlmd

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// maxLangLabel is the longest first-div text accepted as a fence
// language tag. Longer labels degrade to an untagged fence.
const maxLangLabel = 20

// listContext tracks one currently-open list element. The counter
// advances only for ordered lists, once per direct li child.
type listContext struct {
	ordered bool
	counter int
}

// renderer carries the list stack for the duration of one Convert call.
type renderer struct {
	lists []listContext
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// escaper backslash-escapes the characters that would otherwise read
// as emphasis markers in Markdown. The backslash itself goes first.
var escaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`)

// Convert renders the children of root as a Markdown fragment. Runs
// of three or more newlines collapse to a blank line and the result
// is trimmed.
func Convert(root *html.Node) string {
	r := &renderer{}
	md := r.children(root)
	md = blankRuns.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}

func (r *renderer) children(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(r.node(c))
	}
	return sb.String()
}

func (r *renderer) node(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return escaper.Replace(n.Data)
	case html.ElementNode:
		// dispatch below
	default:
		return ""
	}

	switch strings.ToLower(n.Data) {
	case "p":
		return r.children(n) + "\n\n"
	case "br":
		return "  \n"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		return strings.Repeat("#", level) + " " + strings.TrimSpace(r.children(n)) + "\n\n"
	case "hr":
		return "\n---\n\n"
	case "blockquote":
		lines := strings.Split(strings.TrimSpace(r.children(n)), "\n")
		for i, l := range lines {
			lines[i] = "> " + l
		}
		return strings.Join(lines, "\n") + "\n\n"
	case "ul", "ol":
		r.lists = append(r.lists, listContext{ordered: strings.EqualFold(n.Data, "ol")})
		body := r.children(n)
		r.lists = r.lists[:len(r.lists)-1]
		// The leading newline keeps a nested list off its parent
		// item's text line.
		return "\n" + body
	case "li":
		marker := r.marker()
		content := strings.ReplaceAll(strings.TrimSpace(r.children(n)), "\n", "\n   ")
		return marker + " " + content + "\n"
	case "table":
		return r.table(n) + "\n\n"
	case "pre":
		return r.fencedBlock(n)
	case "strong":
		return "**" + strings.TrimSpace(r.children(n)) + "**"
	case "em":
		return "*" + strings.TrimSpace(r.children(n)) + "*"
	case "del":
		return "~~" + strings.TrimSpace(r.children(n)) + "~~"
	case "a":
		href := attr(n, "href")
		if href == "" {
			href = "#"
		}
		return "[" + strings.TrimSpace(r.children(n)) + "](" + href + ")"
	case "sup":
		return "^" + strings.TrimSpace(r.children(n))
	case "code":
		// Inline code; code inside <pre> never reaches this branch
		// because fencedBlock consumes the whole subtree.
		return "`" + strings.TrimSpace(r.children(n)) + "`"
	}

	// Unrecognized tags are transparent: render children only.
	return r.children(n)
}

// marker computes the list item marker from the innermost open list.
// An li outside any list gets the unordered marker.
func (r *renderer) marker() string {
	if len(r.lists) == 0 {
		return "*"
	}
	top := &r.lists[len(r.lists)-1]
	if !top.ordered {
		return "*"
	}
	top.counter++
	return fmt.Sprintf("%d.", top.counter)
}

// table emits GitHub-flavored pipe syntax: the first row is the
// header, followed by a --- separator per column and the body rows.
func (r *renderer) table(n *html.Node) string {
	var rows [][]string
	for _, tr := range findAll(n, "tr") {
		var cells []string
		for _, cell := range findAll(tr, "th", "td") {
			cells = append(cells, strings.TrimSpace(r.children(cell)))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}

	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = "---"
	}

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(rows[0], " | ") + " |")
	sb.WriteString("\n| " + strings.Join(sep, " | ") + " |")
	for _, row := range rows[1:] {
		sb.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}
	return sb.String()
}

// fencedBlock renders a <pre> element. Chat exports wrap block code as
//
//	<pre>
//	  <div>python</div>        ← language label
//	  … more divs …
//	  <code><span>def …</span></code>
//	</pre>
//
// The first div's text becomes the fence language tag only when it is
// non-empty, at most maxLangLabel characters, and space-free; anything
// else degrades silently to an untagged fence. The payload keeps its
// internal whitespace byte-for-byte; only leading and trailing blank
// lines are stripped.
func (r *renderer) fencedBlock(pre *html.Node) string {
	lang := ""
	if div := findFirst(pre, "div"); div != nil {
		if txt, ok := soleText(div); ok {
			txt = strings.TrimSpace(txt)
			if txt != "" && len(txt) <= maxLangLabel && !strings.Contains(txt, " ") {
				lang = txt
			}
		}
	}

	payload := pre
	if code := findFirst(pre, "code"); code != nil {
		payload = code
	}
	text := textContent(payload)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")

	return "\n```" + lang + "\n" + text + "\n```\n\n"
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findFirst returns the first descendant element with the given tag,
// in document order.
func findFirst(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant element matching one of the tags,
// in document order.
func findAll(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			for _, t := range tags {
				if strings.EqualFold(c.Data, t) {
					out = append(out, c)
					break
				}
			}
		}
		out = append(out, findAll(c, tags...)...)
	}
	return out
}

// soleText returns the text of n when its only child is a text node.
func soleText(n *html.Node) (string, bool) {
	c := n.FirstChild
	if c == nil || c.NextSibling != nil || c.Type != html.TextNode {
		return "", false
	}
	return c.Data, true
}

// textContent concatenates every text leaf under n, preserving
// whitespace exactly.
func textContent(n *html.Node) string {
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
	return sb.String()
}
