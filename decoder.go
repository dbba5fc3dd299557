package nbfx

// Decoder decodes a single NBFX-encoded document into an *Element tree. A
// Decoder holds no cursor of its own and no mutable state between Decode
// calls: each call builds a fresh Cursor and decodeCtx, so one Decoder is
// safe to reuse (and share across goroutines) for any number of decodes,
// provided its Dictionary is itself safe to share.
type Decoder struct {
	dict     Dictionary
	tracer   Tracer
	maxDepth int
}

// Option configures a Decoder at construction.
type Option func(*Decoder)

// WithDictionary supplies the static dictionary used to resolve
// dictionary-indexed names and values. Without one, any dictionary-opcode
// record fails with UnknownDictionaryKey.
func WithDictionary(dict Dictionary) Option {
	return func(d *Decoder) { d.dict = dict }
}

// WithTracer supplies a Tracer that receives one trace line per Decode call,
// naming the decoded root element; individual records are not traced.
// Without one, tracing is a no-op.
func WithTracer(tracer Tracer) Option {
	return func(d *Decoder) { d.tracer = tracer }
}

// WithMaxDepth bounds element nesting depth; exceeding it fails with
// NestingLimit rather than growing the call stack without limit. Zero
// means unbounded.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) { d.maxDepth = n }
}

// defaultMaxDepth is the nesting bound applied when WithMaxDepth is not
// given: documents should tolerate at least this much nesting without the
// decoder's own recursion becoming the failure mode.
const defaultMaxDepth = 512

// NewDecoder constructs a Decoder with the given options applied in order.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		tracer:   nopTracer{},
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.tracer == nil {
		d.tracer = nopTracer{}
	}
	return d
}

// Decode decodes exactly one element from the start of buf and returns it.
// Trailing bytes after the element are not an error: the stream may carry
// framing the caller handles separately. EOF encountered before any
// complete element is EndOfStream; EOF immediately after is success.
func (d *Decoder) Decode(buf []byte) (*Element, error) {
	c := newCursor(buf)
	ctx := &decodeCtx{dict: d.dict, tracer: d.tracer, maxDepth: d.maxDepth}

	el, ok, isEnd, err := decodeElement(c, ctx)
	if err != nil {
		return nil, annotate(err, 0, "top level")
	}
	if isEnd {
		return nil, newDecodeError(EndOfStream, 0, errBareEndElement).withFrame("top level")
	}
	if !ok {
		return nil, newDecodeError(EndOfStream, 0, errorf("no element at start of stream")).withFrame("top level")
	}
	d.tracer.Tracef("decoded root element %s, %d bytes consumed", el.Name, c.Tell())
	return el, nil
}
