// =============================================================================
// Workout Tree Tagger - Workout Document Model
// =============================================================================
//
// This module holds the generic XML document model used for workout files.
// Workout files (.zwo, .xml) are small element-structured documents:
//
//   <workout_file>
//     <author>...</author>
//     <name>Sweet Spot 3x12</name>
//     <description>Three blocks just below threshold.</description>
//     <sportType>bike</sportType>
//     <workout>
//       <SteadyState Duration="720" Power="0.90"/>
//       ...
//     </workout>
//   </workout_file>
//
// The model is deliberately schema-free: every element is a node with a name,
// attributes, optional text, and ordered children. Only <name> and
// <description> are ever mutated; everything else passes through untouched.
//
// =============================================================================

package workout

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// =============================================================================
// ELEMENT MODEL
// =============================================================================

// Element is a generic XML element: a name, attributes, character data, and
// ordered child elements.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// Parse decodes a workout document into its root element.
//
// RETURNS:
//   - The root element of the document.
//   - An error if the text is not well-formed XML.
func Parse(docText string) (*Element, error) {
	var root Element
	if err := xml.Unmarshal([]byte(docText), &root); err != nil {
		return nil, fmt.Errorf("invalid workout XML: %w", err)
	}
	return &root, nil
}

// FindOrInsert returns the first direct child with the given local name,
// appending a new empty child of that name if none exists.
func (e *Element) FindOrInsert(name string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	e.Children = append(e.Children, Element{XMLName: xml.Name{Local: name}})
	return &e.Children[len(e.Children)-1]
}

// Find returns the first direct child with the given local name, or nil.
func (e *Element) Find(name string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Serialize renders the document back to text with an XML declaration and
// two-space indentation. Attribute ordering and element order are preserved;
// whitespace between elements is normalized.
func Serialize(root *Element) string {
	var buffer bytes.Buffer

	buffer.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	writeElement(&buffer, root, "  ", 0)

	return buffer.String()
}

// writeElement writes one element and its subtree to the buffer.
func writeElement(buffer *bytes.Buffer, element *Element, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.XMLName.Local)

	for _, attr := range element.Attrs {
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name.Local, escapeXML(attr.Value)))
	}

	text := element.Text
	if len(element.Children) > 0 {
		// Character data on a parent element is the whitespace the decoder
		// collected between children; drop it rather than re-emitting it.
		text = strings.TrimSpace(text)
	}

	if len(element.Children) == 0 && text == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if len(element.Children) == 0 {
		buffer.WriteString(escapeXML(text))
	} else {
		if text != "" {
			buffer.WriteString(escapeXML(text))
		}
		buffer.WriteString("\n")
		for i := range element.Children {
			writeElement(buffer, &element.Children[i], indent, level+1)
		}
		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.XMLName.Local)
	buffer.WriteString(">\n")
}

// escapeXML escapes special characters for XML text and attribute values.
func escapeXML(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}
