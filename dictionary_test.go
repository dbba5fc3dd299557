package nbfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapDictionary(t *testing.T) {
	d := MapDictionary{0x02: "Envelope"}
	s, ok := d.Lookup(0x02)
	assert.True(t, ok)
	assert.Equal(t, "Envelope", s)

	_, ok = d.Lookup(0x99)
	assert.False(t, ok)
}

func TestLookupDictionary(t *testing.T) {
	d := MapDictionary{0x02: "Envelope"}

	s, err := lookupDictionary(d, 0x02, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Envelope", s)

	_, err = lookupDictionary(d, 0x99, 7)
	assert.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, UnknownDictionaryKey, de.Kind)
	assert.Equal(t, 7, de.Pos)

	_, err = lookupDictionary(nil, 0x99, 3)
	assert.Error(t, err)
}

func TestDefaultWellKnownStrings(t *testing.T) {
	d := DefaultWellKnownStrings()
	s, ok := d.Lookup(0x02)
	assert.True(t, ok)
	assert.Equal(t, "Envelope", s)
}
