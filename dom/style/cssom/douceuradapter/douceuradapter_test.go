package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
p, div { margin: 1px 2px; COLOR: Red !important; width: -3px }
@import url("other.css");
@media print {
	h1 { border: 2px dotted #ABC }
}`)
	require.NoError(t, err)
	require.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	//
	p := rules[0]
	assert.Equal(t, "p, div", p.SelectorText())
	assert.Equal(t, "1px 2px 1px 2px", p.Value("margin"))
	assert.Equal(t, "red", p.Value("color"))
	assert.True(t, p.IsImportant("color"))
	assert.False(t, p.IsImportant("margin"))
	assert.Equal(t, "", p.Value("width"), "negative width is not admitted")
	assert.Equal(t, []string{"margin-top", "margin-right", "margin-bottom", "margin-left", "color"},
		p.Properties())
	//
	h1 := rules[1]
	assert.Equal(t, "h1", h1.SelectorText())
	assert.Equal(t, "2px dotted #abc", h1.Style().GetPropertyValue("border"))
	assert.Equal(t, 12, h1.Declaration().Len())
}

func TestRuleStyleIsLive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.cssom")
	defer teardown()
	//
	sheet, err := Parse(`a { flex: 1 1 auto }`, style.ResetOmitted(true))
	require.NoError(t, err)
	a := sheet.Rules()[0]
	a.Style().SetProperty("flex", "2", "")
	assert.Equal(t, "2 1 auto", a.Value("flex"))
	assert.Equal(t, "flex-grow: 2;flex-shrink: 1;flex-basis: auto;", a.Style().CSSText())
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.cssom")
	defer teardown()
	//
	s1, err := Parse(`a { color: blue }`)
	require.NoError(t, err)
	s2, err := Parse(`b { color: green }`)
	require.NoError(t, err)
	empty := Wrap(nil)
	assert.True(t, empty.Empty())
	empty.AppendRules(s1)
	empty.AppendRules(s2)
	require.Len(t, empty.Rules(), 2)
	assert.Equal(t, "green", empty.Rules()[1].Value("color"))
}

var page = `<html><head>
<style media="screen">p { padding: 1em }</style>
<style disabled>p { padding: 2em }</style>
<style type="text/less">p { padding: 3em }</style>
<style></style>
</head><body>
<style type="TEXT/CSS">span { float: left }</style>
<p>Hello</p>
</body></html>`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 3)
	assert.Equal(t, "screen", sheets[0].Media())
	assert.Equal(t, "1em 1em 1em 1em", sheets[0].Rules()[0].Value("padding"))
	assert.True(t, sheets[1].Empty())
	assert.Equal(t, "", sheets[2].Media())
	assert.Equal(t, "left", sheets[2].Rules()[0].Value("float"))
}

func TestStyleElementIgnoresForeignAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head><style>b { float: right }</style></head></html>`))
	require.NoError(t, err)
	styleElem := findElement(atom.Style, doc)
	require.NotNil(t, styleElem)
	styleElem.Attr = []html.Attribute{
		{Namespace: "xlink", Key: "disabled"},
		{Namespace: "xml", Key: "media", Val: "print"},
	}
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "", sheets[0].Media())
	assert.Equal(t, "right", sheets[0].Rules()[0].Value("float"))
}
