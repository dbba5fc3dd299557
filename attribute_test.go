package nbfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAttributeShort(t *testing.T) {
	// 04 04 "test" 86 -> test="true", per spec.md §8 scenario 2's attribute.
	c := newCursor([]byte{0x04, 0x04, 't', 'e', 's', 't', 0x86})
	ctx := &decodeCtx{}
	attr, err := decodeAttribute(c, ctx)
	assert.NoError(t, err)
	assert.Equal(t, "test", attr.Name.String())
	assert.Equal(t, "true", attr.Value)
}

func TestDecodeAttributeXmlnsShort(t *testing.T) {
	c := newCursor([]byte{0x08, 0x03, 'u', 'r', 'n'})
	ctx := &decodeCtx{}
	attr, err := decodeAttribute(c, ctx)
	assert.NoError(t, err)
	assert.Equal(t, "xmlns", attr.Name.String())
	assert.Equal(t, "urn", attr.Value)
}

func TestDecodeAttributeXmlnsPrefixed(t *testing.T) {
	c := newCursor([]byte{0x09, 0x01, 'a', 0x03, 'u', 'r', 'n'})
	ctx := &decodeCtx{}
	attr, err := decodeAttribute(c, ctx)
	assert.NoError(t, err)
	assert.Equal(t, "xmlns:a", attr.Name.String())
	assert.Equal(t, "urn", attr.Value)
}

func TestDecodeAttributeDictionaryValue(t *testing.T) {
	// 07 01 "x" 02 86 -> x:Envelope="true", per spec.md §8 scenario 6.
	dict := MapDictionary{0x02: "Envelope"}
	c := newCursor([]byte{0x07, 0x01, 'x', 0x02, 0x86})
	ctx := &decodeCtx{dict: dict}
	attr, err := decodeAttribute(c, ctx)
	assert.NoError(t, err)
	assert.Equal(t, "x:Envelope", attr.Name.String())
	assert.Equal(t, "true", attr.Value)
}

func TestDecodeAttributePrefixEmbedded(t *testing.T) {
	c := newCursor([]byte{opPrefixAttrStart, 0x04, 't', 'e', 's', 't', 0x86})
	ctx := &decodeCtx{}
	attr, err := decodeAttribute(c, ctx)
	assert.NoError(t, err)
	assert.Equal(t, "a:test", attr.Name.String())
	assert.Equal(t, "true", attr.Value)
}

func TestDecodeAttributePrefixDictionaryEmbedded(t *testing.T) {
	dict := MapDictionary{0x02: "Envelope"}
	c := newCursor([]byte{opPrefixDictAttrStart, 0x02, 0x86})
	ctx := &decodeCtx{dict: dict}
	attr, err := decodeAttribute(c, ctx)
	assert.NoError(t, err)
	assert.Equal(t, "a:Envelope", attr.Name.String())
}

func TestDecodeAttributeUnknownOpcode(t *testing.T) {
	c := newCursor([]byte{0x40})
	ctx := &decodeCtx{}
	_, err := decodeAttribute(c, ctx)
	assert.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, UnknownOpcode, de.Kind)
	assert.Equal(t, 0, c.Tell(), "cursor must be restored on soft failure")
}
