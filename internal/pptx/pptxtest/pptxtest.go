// Package pptxtest builds in-memory PresentationML packages for tests.
package pptxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"
)

// PNG is a stand-in image payload (PNG magic bytes only).
var PNG = []byte{0x89, 0x50, 0x4e, 0x47}

const relsHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`

const (
	SlideType  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	ImageType  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	LayoutType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
)

// Rel is one relationship entry.
type Rel struct {
	ID, Type, Target string
}

// Rels renders a relationship part.
func Rels(rels ...Rel) string {
	var sb strings.Builder
	sb.WriteString(relsHeader)
	for _, r := range rels {
		fmt.Fprintf(&sb, "\n  <Relationship Id=%q Type=%q Target=%q/>", r.ID, r.Type, r.Target)
	}
	sb.WriteString("\n</Relationships>")
	return sb.String()
}

// Presentation renders ppt/presentation.xml listing the given r:ids.
func Presentation(rIDs ...string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
                xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:sldIdLst>`)
	for i, id := range rIDs {
		fmt.Fprintf(&sb, "\n    <p:sldId id=\"%d\" r:id=%q/>", 256+i, id)
	}
	sb.WriteString("\n  </p:sldIdLst>\n</p:presentation>")
	return sb.String()
}

// Slide renders a slide with one paragraph per text and one picture per
// embed id.
func Slide(texts []string, embeds ...string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld>
    <p:spTree>`)
	if len(texts) > 0 {
		sb.WriteString("\n      <p:sp><p:txBody>")
		for _, t := range texts {
			fmt.Fprintf(&sb, "<a:p><a:r><a:t>%s</a:t></a:r></a:p>", escape(t))
		}
		sb.WriteString("</p:txBody></p:sp>")
	}
	for _, id := range embeds {
		fmt.Fprintf(&sb, "\n      <p:pic><p:blipFill><a:blip r:embed=%q/></p:blipFill></p:pic>", id)
	}
	sb.WriteString("\n    </p:spTree>\n  </p:cSld>\n</p:sld>")
	return sb.String()
}

// TwoSlideDeck is a package where slide 1 has an image and a title and
// slide 2 has text only.
func TwoSlideDeck() map[string][]byte {
	return map[string][]byte{
		"ppt/presentation.xml": []byte(Presentation("rId2", "rId3")),
		"ppt/_rels/presentation.xml.rels": []byte(Rels(
			Rel{"rId1", LayoutType, "slideMasters/slideMaster1.xml"},
			Rel{"rId2", SlideType, "slides/slide1.xml"},
			Rel{"rId3", SlideType, "slides/slide2.xml"},
		)),
		"ppt/slides/slide1.xml":            []byte(Slide([]string{"Slide One Title"}, "rId1")),
		"ppt/slides/_rels/slide1.xml.rels": []byte(Rels(Rel{"rId1", ImageType, "../media/image1.png"})),
		"ppt/slides/slide2.xml":            []byte(Slide([]string{"Slide Two Content"})),
		"ppt/slides/_rels/slide2.xml.rels": []byte(Rels()),
		"ppt/media/image1.png":             PNG,
	}
}

// Zip packs files into a ZIP container.
func Zip(t testing.TB, files map[string][]byte) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write(files[name]); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
