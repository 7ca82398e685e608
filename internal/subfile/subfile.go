// Package subfile encodes and decodes .sub files: gzip-compressed XML
// submarine definitions, occasionally stored as plain XML.
package subfile

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/deepharbor/substrip/internal/messages"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses raw .sub bytes into an XML document. Gzip framing is
// optional and a UTF-8 BOM is tolerated; name is used in error messages.
func Decode(name string, data []byte) (*etree.Document, error) {
	xmlBytes := data
	if reader, err := gzip.NewReader(bytes.NewReader(data)); err == nil {
		decompressed, err := io.ReadAll(reader)
		if cerr := reader.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf(messages.SubfileReadFailedFmt, name, err)
		}
		xmlBytes = decompressed
	}
	xmlBytes = bytes.TrimPrefix(xmlBytes, utf8BOM)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlBytes); err != nil {
		return nil, fmt.Errorf(messages.SubfileNotXMLFmt, name, err)
	}
	return doc, nil
}

// Encode serializes the document and wraps it in gzip framing, the format
// the game reads.
func Encode(doc *etree.Document) ([]byte, error) {
	xmlBytes, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(xmlBytes); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeXML serializes the document without gzip framing. Dry-run diffs
// compare the readable XML, not compressed bytes.
func EncodeXML(doc *etree.Document) ([]byte, error) {
	return doc.WriteToBytes()
}
