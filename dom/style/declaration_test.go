package style_test

import (
	"testing"

	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	cases := []struct {
		prop, raw string
	}{
		{"color", "RED"},
		{"color", "#ABC"},
		{"color", "rgb(1,2,3)"},
		{"flood-color", "hsl(120, 50%, 50%)"},
		{"border-top-width", "THIN"},
		{"border-left-width", "2.50PX"},
		{"border-bottom-style", "Dashed"},
		{"border-collapse", "collapse"},
		{"clear", "Both"},
		{"clip", "rect(1px 2px 3px 4px)"},
		{"float", "LEFT"},
		{"css-float", "right"},
		{"flex-grow", "0"},
		{"flex-shrink", "+3"},
		{"flex-basis", "max-content"},
		{"font-size", "x-large"},
		{"top", "-1em"},
		{"left", "auto"},
		{"padding-top", "0.5em"},
		{"margin-left", "-2px"},
		{"z-index", "0"},
		{"order", "-1"},
		{"opacity", ".5"},
		{"width", "50%"},
		{"display", "Inline-Block"},
		{"background-image", "url(a.png)"},
		{"background-position", "left  top"},
	}
	for _, c := range cases {
		want, ok := style.Validate(c.prop, c.raw)
		require.True(t, ok, "%s: %q should be admitted", c.prop, c.raw)
		decl := style.NewDeclaration("")
		decl.Set(c.prop, c.raw, false)
		assert.Equal(t, want, decl.Get(c.prop), "%s: %q", c.prop, c.raw)
	}
}

func TestDeclarationRejectKeepsValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("color: red; padding-top: 1px")
	decl.Set("color", "not-a-color", false)
	decl.Set("padding-top", "-1px", false)
	decl.Set("flex-grow", "1.5", false)
	assert.Equal(t, "red", decl.Get("color"))
	assert.Equal(t, "1px", decl.Get("padding-top"))
	assert.True(t, decl.Lookup("flex-grow").IsNothing())
	assert.Equal(t, 2, decl.Len())
}

func TestDeclarationIntegerZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("flex-grow: 0; z-index: 0; order: +07")
	assert.Equal(t, "0", decl.Get("flex-grow"))
	assert.Equal(t, "0", decl.Get("z-index"))
	assert.Equal(t, "7", decl.Get("order"))
	sv, ok := decl.Lookup("flex-grow").Get()
	require.True(t, ok, "flex-grow: 0 must be stored")
	assert.Equal(t, "0", sv.Value)
}

func TestDeclarationIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("")
	decl.Set("border", "1px solid red", true)
	decl.Set("margin", "1px 2px", false)
	once := decl.Serialize()
	decl.Set("border", "1px solid red", true)
	decl.Set("margin", "1px 2px", false)
	assert.Equal(t, once, decl.Serialize())
	assert.Equal(t, 16, decl.Len())
}

func TestMarginExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("")
	decl.Set("margin", "1px 2px 3px 4px", false)
	assert.Equal(t, "1px", decl.Get("margin-top"))
	assert.Equal(t, "2px", decl.Get("margin-right"))
	assert.Equal(t, "3px", decl.Get("margin-bottom"))
	assert.Equal(t, "4px", decl.Get("margin-left"))
	assert.Equal(t, "1px 2px 3px 4px", decl.Get("margin"))
	//
	decl.Set("margin", "1PX auto", false)
	assert.Equal(t, "1px auto 1px auto", decl.Get("margin"))
	decl.Set("margin", "0 1em -2px", false)
	assert.Equal(t, "0 1em -2px 1em", decl.Get("margin"))
	decl.Set("padding", "3px", false)
	assert.Equal(t, "3px 3px 3px 3px", decl.Get("padding"))
}

func TestFourSidedRejectsAsAWhole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("padding: 1px")
	decl.Set("padding", "2px -3px", false)
	decl.Set("padding", "1px 2px 3px 4px 5px", false)
	decl.Set("margin", "1px red", false)
	assert.Equal(t, "1px 1px 1px 1px", decl.Get("padding"))
	assert.Equal(t, "", decl.Get("margin"))
	assert.Equal(t, 4, decl.Len())
}

func TestUniformGroupSentinel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("margin-right: 1px; margin-bottom: 2px")
	assert.Equal(t, "", decl.Get("margin"), "margin-top is the presence sentinel")
	decl.Set("margin-top", "3px", false)
	assert.Equal(t, "3px 1px 2px", decl.Get("margin"))
}

func TestBorderCollapseOnMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("")
	for _, side := range []string{"top", "right", "bottom", "left"} {
		decl.Set("border-"+side+"-width", "1px", false)
		decl.Set("border-"+side+"-style", "solid", false)
		decl.Set("border-"+side+"-color", "red", false)
	}
	assert.Equal(t, "1px solid red", decl.Get("border"))
	decl.Set("border-left-color", "blue", false)
	assert.Equal(t, "", decl.Get("border"))
	assert.Equal(t, "1px solid blue", decl.Get("border-left"))
	assert.Equal(t, "1px solid red", decl.Get("border-top"))
	decl.Remove("border-top-style")
	assert.Equal(t, "", decl.Get("border-top"))
}

func TestBorderShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("border: RED 2px dotted")
	assert.Equal(t, "2px dotted red", decl.Get("border"))
	assert.Equal(t, 12, decl.Len())
	assert.Equal(t, "2px 2px 2px 2px", decl.Get("border-width"))
	//
	decl.Set("border", "1px solid red blue", false) // two colors
	assert.Equal(t, "2px dotted red", decl.Get("border"))
	decl.Set("border-color", "rgb(0, 0, 255)", false)
	assert.Equal(t, "2px dotted rgb(0, 0, 255)", decl.Get("border"))
	decl.Set("border-style", "bogus", false)
	assert.Equal(t, "dotted", decl.Get("border-right-style"))
	//
	decl.Set("border-bottom", "thick double", false)
	assert.Equal(t, "thick double rgb(0, 0, 255)", decl.Get("border-bottom"))
	assert.Equal(t, "", decl.Get("border"))
}

func TestBorderRadius(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("border-radius: 1px 2px")
	assert.Equal(t, "1px", decl.Get("border-top-left-radius"))
	assert.Equal(t, "2px", decl.Get("border-top-right-radius"))
	assert.Equal(t, "1px", decl.Get("border-bottom-right-radius"))
	assert.Equal(t, "2px", decl.Get("border-bottom-left-radius"))
	assert.Equal(t, "1px 2px 1px 2px", decl.Get("border-radius"))
}

func TestFlex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("flex: 1 1 auto")
	assert.Equal(t, "1 1 auto", decl.Get("flex"))
	decl.Set("flex", "none", false)
	assert.Equal(t, "0 0 auto", decl.Get("flex"))
	decl.Set("flex", "2 0 10px", false)
	assert.Equal(t, "2 0 10px", decl.Get("flex"))
	decl.Set("flex", "auto 1", false) // basis before shrink
	assert.Equal(t, "2 0 10px", decl.Get("flex"))
	decl.Set("flex", "3 20%", false)
	assert.Equal(t, "3 0 20%", decl.Get("flex"))
	//
	decl = style.NewDeclaration("flex: 5")
	assert.Equal(t, "5", decl.Get("flex-grow"))
	assert.Equal(t, "", decl.Get("flex"), "flex needs all three components")
}

func TestBackground(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("background: RED url(a.png) no-repeat fixed center")
	assert.Equal(t, "red", decl.Get("background-color"))
	assert.Equal(t, "url(a.png)", decl.Get("background-image"))
	assert.Equal(t, "center", decl.Get("background-position"))
	assert.Equal(t, "red url(a.png) no-repeat fixed center", decl.Get("background"))
	//
	decl = style.NewDeclaration("background: left top #fff")
	assert.Equal(t, "left top", decl.Get("background-position"))
	assert.Equal(t, "#fff left top", decl.Get("background"))
	decl.Set("background", "red blue", false)
	assert.Equal(t, "#fff", decl.Get("background-color"))
	//
	decl = style.NewDeclaration("background-image: url(b.png)")
	decl.Set("background-image", "url(a.png) junk)", false)
	decl.Set("background", "url(a) url(b)", false)
	assert.Equal(t, "background-image: url(b.png);", decl.Serialize())
}

func TestRemovalCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("color: red")
	decl.Set("padding", "1px 2px", false)
	decl.Remove("padding")
	assert.Equal(t, "", decl.Get("padding-top"))
	assert.Equal(t, "", decl.Get("padding"))
	assert.Equal(t, "red", decl.Get("color"))
	decl.Remove("padding")
	decl.Remove("no-such-property")
	assert.Equal(t, 1, decl.Len())
	//
	decl.Set("border", "1px solid", false)
	decl.Remove("border-top")
	assert.Equal(t, 1+6, decl.Len())
	decl.Remove("BORDER")
	assert.Equal(t, 1, decl.Len())
}

func TestMalformedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("color:red;;bogus;margin:")
	assert.Equal(t, "red", decl.Get("color"))
	assert.Equal(t, "", decl.Get("margin"))
	assert.Equal(t, 1, decl.Len())
	assert.Equal(t, "color: red;", decl.Serialize())
	//
	decl = style.NewDeclaration(" ; : ; color : ; !important; ;;")
	assert.Equal(t, 0, decl.Len())
}

func TestImportantPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("")
	decl.Set("border", "1px solid red", true)
	longhands, ok := style.Longhands("border")
	require.True(t, ok)
	require.Len(t, longhands, 12)
	for _, l := range longhands {
		sv, ok := decl.Lookup(l).Get()
		require.True(t, ok, "%s should be set", l)
		assert.True(t, sv.Important, "%s should be important", l)
	}
	assert.True(t, decl.IsImportant("border"))
	assert.Equal(t, "important", decl.Priority("border-left"))
	decl.Set("border-left-color", "blue", false)
	assert.False(t, decl.IsImportant("border"))
	assert.Equal(t, "", decl.Priority("border-left-color"))
}

func TestSerializeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("color: red; margin-top: 0 !important; --Main-Color: #ABC")
	assert.Equal(t, "color: red;margin-top: 0 !important;--Main-Color: #ABC;", decl.Serialize())
	decl.Set("color", "blue", false) // keeps its position
	assert.Equal(t, "color: blue;margin-top: 0 !important;--Main-Color: #ABC;", decl.CSSText())
	decl.Remove("color")
	decl.Set("COLOR", "Green", false) // moves to the end
	assert.Equal(t, []string{"margin-top", "--Main-Color", "color"}, decl.Names())
	assert.Equal(t, "color", decl.Item(2))
	assert.Equal(t, "", decl.Item(3))
	assert.Equal(t, "", decl.Item(-1))
	//
	again := style.NewDeclaration(decl.Serialize())
	assert.Equal(t, decl.Serialize(), again.Serialize())
}

func TestUnregisteredProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("Text-Align: Center; --Gap: 4px; content: url(x:y)")
	assert.Equal(t, "Center", decl.Get("text-align"))
	assert.Equal(t, "4px", decl.Get("--Gap"))
	assert.Equal(t, "", decl.Get("--gap"), "custom properties are case-sensitive")
	assert.Equal(t, "url(x:y)", decl.Get("content"))
}

func TestGlobalKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("color: INHERIT; margin: initial; border: unset")
	assert.Equal(t, "inherit", decl.Get("color"))
	assert.Equal(t, "initial", decl.Get("margin-left"))
	assert.Equal(t, "unset unset unset", decl.Get("border"))
}

func TestCloneAndSetCSSText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssdecl.style")
	defer teardown()
	//
	decl := style.NewDeclaration("color: red")
	clone := decl.Clone()
	clone.Set("color", "blue", false)
	assert.Equal(t, "red", decl.Get("color"))
	assert.Equal(t, "blue", clone.Get("color"))
	//
	decl.SetCSSText("float: left")
	assert.Equal(t, "float: left;", decl.CSSText())
	var zero style.Declaration
	zero.Set("clear", "both", false)
	assert.Equal(t, "clear: both;", zero.Serialize())
}
