package nbfx

// Element opcode sub-ranges within 0x40..0x77 (§4.5 step 2).
const (
	opElemShort        = 0x40 // no prefix, inline name
	opElemPrefixed     = 0x41 // inline prefix, inline name
	opElemDict         = 0x42 // no prefix, dictionary name
	opElemPrefixedDict = 0x43 // inline prefix, dictionary name
)

// decodeCtx carries the per-decode collaborators and state threaded through
// every record decoder: the injected Dictionary, the optional Tracer, and
// the current/maximum recursion depth. It is passed explicitly on every
// call rather than held in a package variable, so a Decoder has no shared
// mutable state across concurrent Decode calls.
type decodeCtx struct {
	dict     Dictionary
	tracer   Tracer
	depth    int
	maxDepth int
}

// Element is the decoded XML tree node: a qualified tag, its attributes in
// read order, optional text content, and its children in read order.
type Element struct {
	Name     QName
	Attrs    []attribute
	Text     *string
	Children []*Element
}

// decodeElement implements the §4.5 state machine: ReadOpcode, ReadPrefix,
// ReadName, ReadAttributes, MaybeText, ReadChildren, ReadEnd.
//
// ok is false when the next byte is not an element opcode at all (the
// cursor is left unmoved) so the caller's repeatWhilePeek loop can stop
// without this being an error; isEnd is true when the next byte is a bare
// 0x01 EndElement marker, the sentinel a parent's child loop uses to know
// it has seen the last child.
func decodeElement(c *Cursor, ctx *decodeCtx) (el *Element, ok bool, isEnd bool, err error) {
	start := c.Tell()
	op, peeked := c.PeekByteOK()
	if !peeked {
		return nil, false, false, nil
	}
	if op == opEndElement {
		c.pos++
		return nil, false, true, nil
	}
	if !isElementOpcode(op) {
		return nil, false, false, nil
	}
	c.pos++

	if ctx.maxDepth > 0 && ctx.depth >= ctx.maxDepth {
		return nil, false, false, newDecodeError(NestingLimit, start, errorf("element nesting exceeds limit of %d", ctx.maxDepth))
	}

	name, err := decodeElementName(c, ctx, op)
	if err != nil {
		return nil, false, false, annotate(err, start, "element name")
	}

	el = &Element{Name: name}

	if err := repeatWhilePeek(c, isAttributeOpcode, func() error {
		attr, err := decodeAttribute(c, ctx)
		if err != nil {
			return err
		}
		el.Attrs = append(el.Attrs, attr)
		return nil
	}); err != nil {
		return nil, false, false, annotate(err, start, "element attributes")
	}

	closed, err := decodeElementBody(c, ctx, el)
	if err != nil {
		return nil, false, false, annotate(err, start, "element body")
	}
	if !closed {
		if err := readEndElement(c, ctx); err != nil {
			return nil, false, false, annotate(err, start, "element end")
		}
	}
	return el, true, false, nil
}

// decodeElementName resolves the element's prefix and local name per the
// opcode's sub-range.
func decodeElementName(c *Cursor, ctx *decodeCtx, op byte) (QName, error) {
	switch {
	case op >= opPrefixDictElemStart && op <= opPrefixDictElemEnd:
		prefix := string(prefixLetter(op, opPrefixDictElemStart))
		local, err := readDictionaryName(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op >= opPrefixElemStart && op <= opPrefixElemEnd:
		prefix := string(prefixLetter(op, opPrefixElemStart))
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op == opElemDict:
		local, err := readDictionaryName(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Local: local}, nil
	case op == opElemPrefixedDict:
		prefix, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		local, err := readDictionaryName(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	case op == opElemPrefixed:
		prefix, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Prefix: prefix, Local: local}, nil
	default: // opElemShort
		local, err := readStringValue(c, ctx)
		if err != nil {
			return QName{}, err
		}
		return QName{Local: local}, nil
	}
}

// decodeElementBody handles MaybeText, ReadChildren: it returns closed=true
// when the element has already been fully closed by this step (a bare 0x01
// or an odd "with-end-element" text opcode), in which case the caller must
// not also consume a trailing EndElement.
func decodeElementBody(c *Cursor, ctx *decodeCtx, el *Element) (closed bool, err error) {
	op, peeked := c.PeekByteOK()
	if !peeked {
		// EOF here is only tolerated for the root element (§4.6); a nested
		// element with no closing record is a genuine truncation.
		if ctx.depth == 0 {
			return true, nil
		}
		return false, newDecodeError(EndOfStream, c.Tell(), errUnexpectedEOFAfter)
	}

	if op == opEndElement {
		c.pos++
		return true, nil
	}

	if isTextOpcode(op) {
		text, err := decodeTextValue(c, ctx)
		if err != nil {
			return false, err
		}
		el.Text = &text
		if isOddTextOpcode(op) {
			return true, nil
		}
	}

	if err := repeatWhilePeek(c, isElementOpcode, func() error {
		childCtx := *ctx
		childCtx.depth++
		child, ok, _, err := decodeElement(c, &childCtx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		el.Children = append(el.Children, child)
		return nil
	}); err != nil {
		return false, err
	}

	return false, nil
}

// readEndElement consumes a trailing 0x01. EOF is tolerated only for the
// root element (§4.6); any nested context requires an explicit marker.
func readEndElement(c *Cursor, ctx *decodeCtx) error {
	start := c.Tell()
	op, ok := c.PeekByteOK()
	if !ok {
		if ctx.depth == 0 {
			return nil
		}
		return newDecodeError(EndOfStream, start, errUnexpectedEOFAfter)
	}
	if op != opEndElement {
		return newDecodeError(UnknownOpcode, start, errorf("expected EndElement 0x01, got 0x%02x", op))
	}
	c.pos++
	return nil
}
