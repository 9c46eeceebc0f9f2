package xmltree

import (
	"errors"
	"reflect"
	"testing"
)

const slideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:txBody>
          <a:p><a:r><a:t>First</a:t></a:r><a:r><a:t xml:space="preserve"> second &amp; third </a:t></a:r></a:p>
        </p:txBody>
      </p:sp>
      <p:pic>
        <p:blipFill><a:blip r:embed="rId7"/></p:blipFill>
      </p:pic>
      <p:pic>
        <p:blipFill><a:blip r:embed="rId8"/></p:blipFill>
      </p:pic>
    </p:spTree>
  </p:cSld>
</p:sld>`

func TestDecodeKeepsPrefixes(t *testing.T) {
	root, err := Decode(slideXML)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if root.Name != "p:sld" {
		t.Errorf("expected root p:sld, got %s", root.Name)
	}
	if v, ok := root.Attr("xmlns:a"); !ok || v == "" {
		t.Error("expected xmlns:a attribute to be kept")
	}

	tree := root.Child("p:cSld").Child("p:spTree")
	if n := len(tree.All("p:pic")); n != 2 {
		t.Errorf("expected 2 p:pic, got %d", n)
	}
	if n := len(tree.All("p:sp")); n != 1 {
		t.Errorf("expected single p:sp as a one-element slice, got %d", n)
	}
	if n := len(tree.All("p:graphicFrame")); n != 0 {
		t.Errorf("expected no p:graphicFrame, got %d", n)
	}
	if tree.Child("p:graphicFrame") != nil {
		t.Error("expected nil Child for absent tag")
	}
}

func TestDecodeDropsBlankText(t *testing.T) {
	root, err := Decode("<a>\n  <b>x</b>\n</a>")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d: %#v", len(root.Children), root.Children)
	}
	if got := root.Child("b").Text(); got != "x" {
		t.Errorf("expected text x, got %q", got)
	}
}

func TestCollectInDocumentOrder(t *testing.T) {
	root, err := Decode(slideXML)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	texts := Collect(root, TextOf("a:t"))
	want := []string{"First", " second & third "}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("texts = %q, want %q", texts, want)
	}

	embeds := Collect(root, AttrOf("r:embed"))
	if !reflect.DeepEqual(embeds, []string{"rId7", "rId8"}) {
		t.Errorf("embeds = %q", embeds)
	}
}

func TestCollectCustomPredicate(t *testing.T) {
	root, err := Decode(`<r><x n="1"/><y><x n="2"/></y><x/></r>`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	got := Collect(root, func(el *Element) []string {
		if el.Name == "x" {
			return []string{el.Attrs["n"]}
		}
		return nil
	})
	if !reflect.DeepEqual(got, []string{"1", "2", ""}) {
		t.Errorf("got %q", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"mismatched", "<a><b></a></b>"},
		{"unclosed", "<a><b></b>"},
		{"stray end", "<a/></b>"},
		{"two roots", "<a/><b/>"},
		{"text outside", "<a/>trailing"},
		{"bad syntax", "<a attr=unquoted/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			if !errors.Is(err, ErrMalformedXML) {
				t.Errorf("expected ErrMalformedXML, got %v", err)
			}
		})
	}
}

func TestRepeatableSet(t *testing.T) {
	for _, tag := range []string{"p:sldId", "Relationship", "p:sp", "p:pic", "a:p", "a:r"} {
		if !repeatable[tag] {
			t.Errorf("%s should be repeatable", tag)
		}
	}
}
