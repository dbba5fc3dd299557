package nbfx

import "fmt"

// Dictionary is a read-only lookup from a static dictionary key to its
// well-known string, supplied to the decoder at construction. It is treated
// as an external collaborator: the decoder only ever reads from it, and a
// single Dictionary may be shared across concurrent decodes.
type Dictionary interface {
	// Lookup returns the string for key and true, or ("", false) if key is
	// not present.
	Lookup(key uint32) (string, bool)
}

// MapDictionary is the straightforward Dictionary backed by a map.
type MapDictionary map[uint32]string

// Lookup implements Dictionary.
func (d MapDictionary) Lookup(key uint32) (string, bool) {
	s, ok := d[key]
	return s, ok
}

// lookupDictionary resolves key against dict, returning a positioned
// UnknownDictionaryKey error if it is absent.
func lookupDictionary(dict Dictionary, key uint32, pos int) (string, error) {
	if dict == nil {
		return "", newDecodeError(UnknownDictionaryKey, pos, fmt.Errorf("unknown dictionary key 0x%x (no dictionary configured)", key))
	}
	s, ok := dict.Lookup(key)
	if !ok {
		return "", newDecodeError(UnknownDictionaryKey, pos, fmt.Errorf("unknown dictionary key 0x%x", key))
	}
	return s, nil
}

// DefaultWellKnownStrings returns a small, illustrative MapDictionary of
// well-known SOAP/WS-* strings, so the decoder can be exercised end to end
// without every caller hand-rolling the dictionary. Real deployments
// typically supply the full [MC-NBFX] Appendix dictionary instead.
func DefaultWellKnownStrings() MapDictionary {
	return MapDictionary{
		0x02: "Envelope",
		0x04: "Header",
		0x06: "Body",
		0x08: "Fault",
		0x0A: "faultcode",
		0x0C: "faultstring",
		0x0E: "faultactor",
		0x10: "detail",
		0x12: "http://www.w3.org/2003/05/soap-envelope",
		0x14: "http://schemas.xmlsoap.org/soap/envelope/",
		0x16: "http://www.w3.org/2005/08/addressing",
		0x18: "mustUnderstand",
		0x1A: "Action",
		0x1C: "To",
		0x1E: "MessageID",
		0x20: "RelatesTo",
		0x22: "ReplyTo",
		0x24: "Address",
		0x26: "http://www.w3.org/2001/XMLSchema-instance",
		0x28: "http://www.w3.org/2001/XMLSchema",
		0x2A: "nil",
		0x2C: "type",
	}
}
