package nbfx

import (
	"encoding/xml"
	"strings"
)

// EncodeXML renders el and its subtree as the textual XML document the
// sender would otherwise have emitted. Attribute and child order are
// preserved exactly as decoded. Text and attribute values are escaped with
// encoding/xml's own escaper so the output is well-formed regardless of
// what characters the wire values contained.
func (el *Element) EncodeXML() (string, error) {
	var b strings.Builder
	if err := el.encodeXML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (el *Element) encodeXML(b *strings.Builder) error {
	b.WriteByte('<')
	b.WriteString(el.Name.String())
	for _, attr := range el.Attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name.String())
		b.WriteString(`="`)
		if err := xml.EscapeText(attrWriter{b}, []byte(attr.Value)); err != nil {
			return err
		}
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if el.Text != nil {
		if err := xml.EscapeText(attrWriter{b}, []byte(*el.Text)); err != nil {
			return err
		}
	}
	for _, child := range el.Children {
		if err := child.encodeXML(b); err != nil {
			return err
		}
	}

	b.WriteString("</")
	b.WriteString(el.Name.String())
	b.WriteByte('>')
	return nil
}

// attrWriter wraps a *strings.Builder as the io.Writer xml.EscapeText
// writes to, forwarding each Write to the Builder.
type attrWriter struct{ b *strings.Builder }

func (w attrWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}
