package svgdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathData(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300">
  <rect x="0" y="0" width="10" height="10" d="M 9 9"/>
  <g>
    <path id="p1" fill="none" d="M 20 50 L 100 50 l 50 -30"/>
    <path d="M 0 0 L 1 1"/>
  </g>
</svg>`
	d, err := PathData(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "M 20 50 L 100 50 l 50 -30", d)
}

func TestPathDataPrefixedAndSingleQuoted(t *testing.T) {
	doc := `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:path d='M 1 2 H 5'></svg:path></svg:svg>`
	d, err := PathData(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "M 1 2 H 5", d)
}

func TestPathDataReferences(t *testing.T) {
	doc := `<svg><path d="M 0 0&#10;L 10&#x20;0&#9;h 5 &amp;"/></svg>`
	d, err := PathData(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "M 0 0\nL 10 0\th 5 &", d)
}

func TestPathDataMissing(t *testing.T) {
	_, err := PathData(strings.NewReader(`<svg><path fill="red"/><circle r="4"/></svg>`))
	assert.ErrorIs(t, err, ErrNoPath)
}
