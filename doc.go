// Package nbfx decodes the .NET Binary XML (NBFX) wire format: the
// compact, record-oriented binary encoding of XML used by WCF/SOAP
// transports under the [MC-NBFX] specification.
//
// A Decoder reads a single encoded element from a byte buffer and returns
// an *Element tree bit-compatible with the XML the sender would otherwise
// have emitted. Dictionary-indexed names and values are resolved against a
// caller-supplied Dictionary; see DefaultWellKnownStrings for a small
// illustrative one.
package nbfx
