package nbfx

import "unsafe"

// unsafeString performs a no-copy string conversion from buf.
// https://github.com/golang/go/issues/25484 has more info on this; the
// implementation is roughly taken from strings.Builder's.
//
// It is safe here because every []byte passed to it is either a slice of
// the Decoder's immutable input buffer, or a freshly allocated slice that
// nothing else retains a mutable reference to afterwards.
func unsafeString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&buf))
}
