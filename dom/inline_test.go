package dom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var page = `<html><head></head><body>
<p id="p" style="COLOR: Red; margin: 1px 2px">Hello</p>
<div id="div" style="bogus">World</div>
<span>!</span>
</body></html>`

func parsePage(t *testing.T) *html.Node {
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func byID(doc *html.Node, id string) *html.Node {
	nodes := Walk(doc, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func TestWalkInlineStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.dom")
	defer teardown()
	//
	doc := parsePage(t)
	nodes := Walk(doc, NodeHasInlineStyle)
	require.Len(t, nodes, 2)
	assert.Equal(t, "p", nodes[0].Data)
	assert.Equal(t, "div", nodes[1].Data)
	assert.Empty(t, Walk(nil, NodeHasInlineStyle))
}

func TestInlineStyleWriteBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.dom")
	defer teardown()
	//
	doc := parsePage(t)
	p := byID(doc, "p")
	require.NotNil(t, p)
	e, err := InlineStyle(p)
	require.NoError(t, err)
	s := e.Style()
	assert.Equal(t, "red", s.GetPropertyValue("color"))
	assert.Equal(t, "1px 2px 1px 2px", s.GetPropertyValue("margin"))
	assert.Equal(t, 5, s.Length())
	assert.Equal(t, "color", s.Item(0))
	//
	s.SetProperty("border", "1px solid", "IMPORTANT")
	v, _ := attr(p, "style")
	assert.Contains(t, v, "border-left-style: solid !important;")
	assert.Equal(t, "important", s.GetPropertyPriority("border-top-width"))
	//
	assert.Equal(t, "red", s.RemoveProperty("color"))
	s.SetProperty("margin", "", "")
	s.SetProperty("border", "", "")
	assert.Equal(t, 0, s.Length())
	_, ok := attr(p, "style")
	assert.False(t, ok, "empty style attribute should be removed")
	//
	s.SetCSSText("float: LEFT")
	v, _ = attr(p, "style")
	assert.Equal(t, "float: left;", v)
}

func TestInlineStyleOnNonElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.dom")
	defer teardown()
	//
	doc := parsePage(t)
	_, err := InlineStyle(doc)
	assert.Error(t, err)
	_, err = InlineStyle(nil)
	assert.Error(t, err)
}

func TestNormalizeInlineStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.dom")
	defer teardown()
	//
	doc := parsePage(t)
	elements := NormalizeInlineStyles(doc, style.StrictImportant(true))
	require.Len(t, elements, 2)
	assert.True(t, elements[0].Declaration().Options().StrictImportant)
	var out bytes.Buffer
	require.NoError(t, html.Render(&out, doc))
	t.Logf("%s", out.String())
	assert.Contains(t, out.String(),
		`<p id="p" style="color: red;margin-top: 1px;margin-right: 2px;margin-bottom: 1px;margin-left: 2px;">`)
	assert.Contains(t, out.String(), `<div id="div">World</div>`)
}
