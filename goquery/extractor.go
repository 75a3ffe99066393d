package goquery

import (
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/landval"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HeadingAtom is the heading level that introduces valuation sections.
const HeadingAtom = atom.H4

// Ensure TableExtractor implements landval.TableExtractor at compile time.
var _ landval.TableExtractor = (*TableExtractor)(nil)

// TableExtractor extracts residential and commercial-family valuation
// tables from region pages. Each recognized h4 heading is paired with the
// first table that follows it in document order.
type TableExtractor struct {
	logger *slog.Logger
}

// NewTableExtractor creates a new TableExtractor.
// Tables that fail to parse are reported to logger; nil discards them.
func NewTableExtractor(logger *slog.Logger) *TableExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TableExtractor{logger: logger}
}

// Extract parses an HTML document and returns its valuation tables.
func (e *TableExtractor) Extract(r io.Reader) (*landval.DocumentTables, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, landval.Errorf(landval.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractNode(root), nil
}

// ExtractNode extracts valuation tables from an already parsed document.
func (e *TableExtractor) ExtractNode(root *html.Node) *landval.DocumentTables {
	result := &landval.DocumentTables{}
	nodes := sectionNodes(root, nil)

	for i, n := range nodes {
		if n.DataAtom != HeadingAtom {
			continue
		}
		heading := goquery.NewDocumentFromNode(n).Text()
		category, ok := landval.ClassifyHeading(heading)
		if !ok {
			continue
		}

		var table *landval.Table
		if next := nextTable(nodes[i+1:]); next != nil {
			t, err := ParseTable(goquery.NewDocumentFromNode(next).Selection)
			if err != nil {
				e.logger.Warn("could not parse table",
					"category", string(category),
					"err", err,
				)
			} else {
				table = t
			}
		} else {
			e.logger.Debug("no table after heading", "category", string(category))
		}

		result.Apply(category, table)
	}

	return result
}

// sectionNodes collects heading and table elements in document order.
func sectionNodes(n *html.Node, nodes []*html.Node) []*html.Node {
	if n == nil {
		return nodes
	}
	if n.Type == html.ElementNode && (n.DataAtom == HeadingAtom || n.DataAtom == atom.Table) {
		nodes = append(nodes, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodes = sectionNodes(c, nodes)
	}
	return nodes
}

func nextTable(nodes []*html.Node) *html.Node {
	for _, n := range nodes {
		if n.DataAtom == atom.Table {
			return n
		}
	}
	return nil
}
