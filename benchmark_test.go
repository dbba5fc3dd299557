package nbfx

import "testing"

// benchDoc builds a synthetic NBFX document: a leaf element carrying one
// attribute and a Chars32 text record, wrapped in depth bare elements.
// There is no bundled capture to decode against (the format has no public
// corpus the way encoding/xml does), so the benchmark generates its own
// input rather than shipping a binary fixture into the module.
func benchDoc(depth int) []byte {
	var leaf []byte
	leaf = append(leaf, 0x40, 0x01, 'x')
	leaf = append(leaf, 0x04, 0x01, 'k', 0x86)
	leaf = append(leaf, 0x9C, 0x05, 'h', 'e', 'l', 'l', 'o')
	leaf = append(leaf, 0x01)

	doc := leaf
	for i := 0; i < depth; i++ {
		var wrapped []byte
		wrapped = append(wrapped, 0x40, 0x01, 'x')
		wrapped = append(wrapped, doc...)
		wrapped = append(wrapped, 0x01)
		doc = wrapped
	}
	return doc
}

func BenchmarkDecodeShallow(b *testing.B) {
	data := benchDoc(1)
	d := NewDecoder()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := d.Decode(data); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkDecodeDeep(b *testing.B) {
	data := benchDoc(64)
	d := NewDecoder()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := d.Decode(data); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkEncodeXML(b *testing.B) {
	data := benchDoc(32)
	d := NewDecoder()
	el, err := d.Decode(data)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := el.EncodeXML(); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
