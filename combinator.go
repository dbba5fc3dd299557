package nbfx

// This file holds the one peek-based combinator the structural parser is
// built from. The format's own grammar is regular enough that a full
// combinator library buys nothing over direct recursive descent; what
// must survive is the *semantics* of soft failure
// (cursor unmoved, caller may try something else) versus committed failure
// (cursor advanced, the error surfaces).

// repeatWhilePeek runs decode once per iteration for as long as peeking the
// next byte satisfies accept. It stops, without error, at EOF or the first
// byte accept rejects — the cursor is left exactly where that byte sits, so
// the caller's next read sees it.
func repeatWhilePeek(c *Cursor, accept func(byte) bool, decode func() error) error {
	for {
		b, ok := c.PeekByteOK()
		if !ok || !accept(b) {
			return nil
		}
		if err := decode(); err != nil {
			return err
		}
	}
}
