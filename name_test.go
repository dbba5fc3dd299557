package nbfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQNameString(t *testing.T) {
	assert.Equal(t, "local", QName{Local: "local"}.String())
	assert.Equal(t, "a:local", QName{Prefix: "a", Local: "local"}.String())
}

func TestXmlnsName(t *testing.T) {
	assert.Equal(t, "xmlns", xmlnsName().String())
	assert.Equal(t, "xmlns:a", xmlnsPrefixedName("a").String())
}
