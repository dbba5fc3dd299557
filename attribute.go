package nbfx

import "unicode/utf8"

// Attribute opcode sub-ranges within 0x04..0x3F (§4.4).
const (
	opAttrShort           = 0x04 // no prefix, inline name, value is a text record
	opAttrShortDict       = 0x06 // no prefix, dictionary name, value is a text record
	opAttrPrefixedInline  = 0x05 // inline prefix, inline name, value is a text record
	opAttrPrefixedDict    = 0x07 // inline prefix, dictionary name, value is a text record
	opAttrXmlnsShort      = 0x08 // xmlns="..." (value inline)
	opAttrXmlnsShortDict  = 0x0A // xmlns="..." (value a dictionary key)
	opAttrXmlnsPrefixed   = 0x09 // xmlns:p="..." (value inline)
	opAttrXmlnsPrefixedDi = 0x0B // xmlns:p="..." (value a dictionary key)
)

// attribute is a single decoded Name="Value" pair.
type attribute struct {
	Name  QName
	Value string
}

// decodeAttribute decodes one attribute record starting at the current
// cursor position. The opcode has not yet been read. The failure is "soft"
// (an UnknownOpcode error with the cursor restored) when the next byte is
// not an attribute opcode at all — repeatWhilePeek never lets that happen
// in practice since it peeks first, but decodeAttribute still restores the
// cursor on opcodes outside 0x04..0x3F so the contract holds if called
// directly.
func decodeAttribute(c *Cursor, ctx *decodeCtx) (attribute, error) {
	start := c.Tell()
	op, err := c.ReadByte()
	if err != nil {
		return attribute{}, annotate(err, start, "attribute opcode")
	}
	if !isAttributeOpcode(op) {
		c.pos = start
		return attribute{}, newDecodeError(UnknownOpcode, start, errorf("opcode 0x%02x is not an attribute record", op))
	}

	name, err := decodeAttributeName(c, ctx, op, start)
	if err != nil {
		return attribute{}, annotate(err, start, "attribute name")
	}

	value, err := decodeAttributeValue(c, ctx, op, start)
	if err != nil {
		return attribute{}, annotate(err, start, "attribute value")
	}

	return attribute{Name: name, Value: value}, nil
}

func decodeAttributeName(c *Cursor, ctx *decodeCtx, op byte, start int) (QName, error) {
	switch {
	case op == opAttrXmlnsShort || op == opAttrXmlnsShortDict:
		return xmlnsName(), nil
	case op == opAttrXmlnsPrefixed || op == opAttrXmlnsPrefixedDi:
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return xmlnsPrefixedName(local), nil
	case op >= opPrefixDictAttrStart && op <= opPrefixDictAttrEnd:
		prefix := string(prefixLetter(op, opPrefixDictAttrStart))
		local, err := readDictionaryName(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op >= opPrefixAttrStart && op <= opPrefixAttrEnd:
		prefix := string(prefixLetter(op, opPrefixAttrStart))
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op == opAttrPrefixedInline:
		prefix, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op == opAttrPrefixedDict:
		prefix, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		local, err := readDictionaryName(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op == opAttrShortDict:
		local, err := readDictionaryName(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Local: local}, nil
	default: // opAttrShort
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Local: local}, nil
	}
}

func decodeAttributeValue(c *Cursor, ctx *decodeCtx, op byte, start int) (string, error) {
	switch op {
	case opAttrXmlnsShort, opAttrXmlnsPrefixed:
		return readStringValue(c, ctx)
	case opAttrXmlnsShortDict, opAttrXmlnsPrefixedDi:
		return readDictionaryName(c, ctx)
	default:
		return decodeTextValue(c, ctx)
	}
}

// readStringValue reads an inline Chars8-style string: an MBI-31 length
// followed by that many UTF-8 bytes.
func readStringValue(c *Cursor, ctx *decodeCtx) (string, error) {
	start := c.Tell()
	n, err := ReadMBI31(c)
	if err != nil {
		return "", err
	}
	b, err := c.ReadExact(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newDecodeError(DecodeValue, start, errorf("invalid UTF-8 in attribute name/prefix"))
	}
	return unsafeString(b), nil
}

func readDictionaryName(c *Cursor, ctx *decodeCtx) (string, error) {
	start := c.Tell()
	key, err := ReadMBI31(c)
	if err != nil {
		return "", err
	}
	return lookupDictionary(ctx.dict, key, start)
}
