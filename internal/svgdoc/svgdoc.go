// Package svgdoc extracts path data from SVG documents.
package svgdoc

import (
	"bytes"
	"errors"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ErrNoPath indicates a document without a path element carrying path data.
var ErrNoPath = errors.New("svgdoc: no path element with a d attribute")

// entities are the predefined XML entities. Character references are decoded
// without a table.
var entities = map[string][]byte{
	"amp":  []byte("&"),
	"apos": []byte("'"),
	"gt":   []byte(">"),
	"lt":   []byte("<"),
	"quot": []byte(`"`),
}

// PathData returns the d attribute of the first path element of the SVG
// document read from r, with entity and character references such as &#10;
// decoded. Namespace prefixes on the element name are ignored.
func PathData(r io.Reader) (string, error) {
	l := xml.NewLexer(parse.NewInput(r))
	inPath := false
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return "", err
			}
			return "", ErrNoPath
		case xml.StartTagToken:
			inPath = string(localName(l.Text())) == "path"
		case xml.AttributeToken:
			if inPath && string(l.Text()) == "d" {
				return string(parse.ReplaceEntities(unquote(l.AttrVal()), entities, nil)), nil
			}
		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			inPath = false
		}
	}
}

func localName(name []byte) []byte {
	if i := bytes.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func unquote(val []byte) []byte {
	if n := len(val); n >= 2 && (val[0] == '"' || val[0] == '\'') && val[n-1] == val[0] {
		return val[1 : n-1]
	}
	return val
}
