package document

import (
	"strings"
	"testing"
)

const treeXML = `<?xml version='1.0' encoding='utf-8'?>
<Document SchemaVersion="4">
    <Properties Count="3">
        <Property name="Label" type="App::PropertyString">
            <String value="Sketch"/>
        </Property>
        <Property name="FullyConstrained" type="App::PropertyBool">
            <Bool value="true"/>
        </Property>
        <Comment/>
        <Property name="Radius">
            <Float value="2.5" count="3" flag="1"/>
        </Property>
    </Properties>
</Document>`

func parseTree(t *testing.T) *Element {
	t.Helper()
	root, err := Parse(strings.NewReader(treeXML))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestParse(t *testing.T) {
	root := parseTree(t)

	if root.Tag != "Document" {
		t.Errorf("root tag = %q, want Document", root.Tag)
	}
	if v, ok := root.Attr("SchemaVersion"); !ok || v != "4" {
		t.Errorf("SchemaVersion = (%q, %v), want (4, true)", v, ok)
	}

	props := root.Child("Properties")
	if props == nil {
		t.Fatal("Properties child not found")
	}
	if got := len(props.ChildrenByTag("Property")); got != 3 {
		t.Errorf("Property children = %d, want 3", got)
	}
	if root.Child("Objects") != nil {
		t.Error("Child returned a node for an absent tag")
	}
}

func TestParseNoRoot(t *testing.T) {
	if _, err := Parse(strings.NewReader("  ")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(strings.NewReader("<Document><Open></Document>")); err == nil {
		t.Error("expected error for mismatched tags")
	}
}

func TestFindProperty(t *testing.T) {
	props := parseTree(t).Child("Properties")

	label := FindProperty(props, "Label")
	if label == nil {
		t.Fatal("Label property not found")
	}
	strEl := label.Child("String")
	if strEl == nil {
		t.Fatal("String child not found")
	}
	if v, _ := strEl.Attr("value"); v != "Sketch" {
		t.Errorf("Label value = %q, want Sketch", v)
	}

	if FindProperty(props, "Geometry") != nil {
		t.Error("FindProperty returned a node for an absent name")
	}
}

func TestReaderDefaults(t *testing.T) {
	props := parseTree(t).Child("Properties")
	r := NewReader(FindProperty(props, "Radius").Child("Float"))

	if got := r.Float("value", 0); got != 2.5 {
		t.Errorf("Float(value) = %v, want 2.5", got)
	}
	if got := r.Float("missing", 1.5); got != 1.5 {
		t.Errorf("Float(missing) = %v, want default 1.5", got)
	}
	if got := r.Int("count", 0); got != 3 {
		t.Errorf("Int(count) = %v, want 3", got)
	}
	if got := r.Int("missing", 7); got != 7 {
		t.Errorf("Int(missing) = %v, want default 7", got)
	}
	if got := r.Str("missing", "fallback"); got != "fallback" {
		t.Errorf("Str(missing) = %q, want fallback", got)
	}
	if !r.Flag("flag", false) {
		t.Error("Flag(flag) = false, want true")
	}
	if !r.Flag("missing", true) {
		t.Error("Flag(missing) = false, want default true")
	}
	if r.Flag("count", true) {
		t.Error(`Flag(count) = true for value "3", want false`)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}

func TestReaderConversionError(t *testing.T) {
	root, err := Parse(strings.NewReader(`<El value="not-a-number"/>`))
	if err != nil {
		t.Fatal(err)
	}
	r := NewReader(root)
	if got := r.Float("value", 9); got != 9 {
		t.Errorf("Float on bad value = %v, want default 9", got)
	}
	if r.Err() == nil {
		t.Error("Err = nil, want conversion error")
	}
}
