package nbfx

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const ticksPerSecond = 10_000_000 // 100ns units per second

// epoch is 0001-01-01T00:00:00 UTC, the DateTime/TimeSpan tick origin.
var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// dateTimeFromTicks converts ticks (100ns units since epoch) to a time.Time,
// avoiding int64 overflow of a direct time.Duration multiplication by
// decomposing into whole days (safe for AddDate) plus a sub-day duration.
func dateTimeFromTicks(ticks uint64) time.Time {
	totalSeconds := ticks / ticksPerSecond
	remainderTicks := ticks % ticksPerSecond
	days := totalSeconds / 86400
	secOfDay := totalSeconds % 86400
	t := epoch.AddDate(0, 0, int(days))
	return t.Add(time.Duration(secOfDay)*time.Second + time.Duration(remainderTicks*100)*time.Nanosecond)
}

// renderDateTime implements the §4.3 0x96/0x97 DateTime record: the low 2
// bits of the 64-bit value are the timezone kind (0 unspecified, 1 UTC,
// 2 local), the upper 62 bits are 100ns ticks since year 1 AD.
//
// Kind 2 ("local") is rendered without an offset suffix rather than
// guessing a machine-local UTC offset: spec.md leaves this ambiguous, and
// a decoder has no deterministic, testable notion of "this machine".
func renderDateTime(raw uint64) string {
	kind := raw & 0x3
	ticks := raw >> 2
	t := dateTimeFromTicks(ticks)
	s := t.Format("2006-01-02T15:04:05.9999999")
	if kind == 1 {
		s += "Z"
	}
	return s
}

// renderTimeSpan implements the §4.3 0xAE/0xAF TimeSpan record: a signed
// 64-bit tick count (100ns units), rendered per .NET's
// "[-]d.hh:mm:ss[.fffffff]" convention.
func renderTimeSpan(ticks int64) string {
	negative := ticks < 0
	abs := uint64(ticks)
	if negative {
		abs = uint64(-ticks)
	}
	totalSeconds := abs / ticksPerSecond
	remainderTicks := abs % ticksPerSecond
	days := totalSeconds / 86400
	secOfDay := totalSeconds % 86400
	hh := secOfDay / 3600
	mm := (secOfDay % 3600) / 60
	ss := secOfDay % 60

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if days != 0 {
		fmt.Fprintf(&b, "%d.%02d:%02d:%02d", days, hh, mm, ss)
	} else {
		fmt.Fprintf(&b, "%02d:%02d:%02d", hh, mm, ss)
	}
	if remainderTicks != 0 {
		frac := fmt.Sprintf("%07d", remainderTicks)
		frac = strings.TrimRight(frac, "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// renderDecimal implements the §4.3 0x94/0x95 .NET Decimal record: a
// 128-bit value stored as four little-endian 32-bit words (lo, mid, hi,
// flags) per System.Decimal.GetBits/BinaryWriter.Write(decimal). flags
// carries the sign (bit 31) and scale (bits 16-23); (hi:mid:lo) form an
// unsigned 96-bit integer mantissa. Rendered as a canonical decimal string,
// trimmed of trailing fractional zeros and a trailing '.'.
//
// math/big is the standard library's own bignum type; no library in the
// retrieved pack implements .NET's 128-bit decimal layout, so this is one
// of the few places the decoder reaches for stdlib over a third-party dep.
func renderDecimal(b []byte) (string, error) {
	if len(b) != 16 {
		return "", errorf("decimal record requires 16 bytes, got %d", len(b))
	}
	lo := binary.LittleEndian.Uint32(b[0:4])
	mid := binary.LittleEndian.Uint32(b[4:8])
	hi := binary.LittleEndian.Uint32(b[8:12])
	flags := binary.LittleEndian.Uint32(b[12:16])
	negative := flags&0x80000000 != 0
	scale := int((flags >> 16) & 0xFF)

	mantissa := new(big.Int).SetUint64(uint64(hi))
	mantissa.Lsh(mantissa, 32)
	mantissa.Or(mantissa, new(big.Int).SetUint64(uint64(mid)))
	mantissa.Lsh(mantissa, 32)
	mantissa.Or(mantissa, new(big.Int).SetUint64(uint64(lo)))

	s := mantissa.String()
	if scale > 0 {
		for len(s) <= scale {
			s = "0" + s
		}
		s = s[:len(s)-scale] + "." + s[len(s)-scale:]
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" {
		s = "0"
	}
	if negative && s != "0" {
		s = "-" + s
	}
	return s, nil
}

// reorderGUIDBytes converts the wire's mixed-endian 16-byte GUID layout
// (groups 1-3 little-endian, groups 4-5 big-endian) into the canonical
// RFC 4122 big-endian byte order google/uuid expects.
func reorderGUIDBytes(b []byte) (out [16]byte) {
	out[0], out[1], out[2], out[3] = b[3], b[2], b[1], b[0]
	out[4], out[5] = b[5], b[4]
	out[6], out[7] = b[7], b[6]
	copy(out[8:16], b[8:16])
	return out
}

// renderUUID implements §4.3 0xB0/0xB1: 16 bytes -> canonical UUID text.
func renderUUID(b []byte) (string, error) {
	if len(b) != 16 {
		return "", errorf("UUID record requires 16 bytes, got %d", len(b))
	}
	reordered := reorderGUIDBytes(b)
	id, err := uuid.FromBytes(reordered[:])
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// renderUniqueID implements §4.3 0xAC/0xAD: same byte layout as UUID, but
// rendered with a "urn:uuid:" prefix.
func renderUniqueID(b []byte) (string, error) {
	s, err := renderUUID(b)
	if err != nil {
		return "", err
	}
	return "urn:uuid:" + s, nil
}
