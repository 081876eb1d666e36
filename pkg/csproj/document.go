package csproj

import (
	"bytes"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a project file loaded into memory.
type Document struct {
	Path string

	tree *etree.Document
	mode os.FileMode
	bom  bool
	crlf bool
}

// Load reads and parses the project file at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	doc := &Document{
		Path: path,
		mode: info.Mode().Perm(),
	}
	if bytes.HasPrefix(data, utf8BOM) {
		doc.bom = true
		data = data[len(utf8BOM):]
	}
	// The decoder folds \r\n into \n, restored in Bytes
	doc.crlf = bytes.Contains(data, []byte("\r\n"))

	if err := doc.parse(data); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) parse(data []byte) error {
	tree := etree.NewDocument()
	tree.ReadSettings.PreserveCData = true
	// Leave quotes unescaped, MSBuild conditions are full of them
	tree.WriteSettings.CanonicalAttrVal = true
	tree.WriteSettings.CanonicalText = true
	if err := tree.ReadFromBytes(data); err != nil {
		return fmt.Errorf("failed to parse %s: %w", d.Path, err)
	}
	if tree.Root() == nil {
		return fmt.Errorf("failed to parse %s: no root element", d.Path)
	}
	d.tree = tree
	return nil
}

// Groups returns every PropertyGroup element in document order.
func (d *Document) Groups() []*etree.Element {
	var groups []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.FullTag() == GroupTag {
			groups = append(groups, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(d.tree.Root())
	return groups
}

// Bytes serializes the document, including the byte order mark and CRLF line
// endings if the file had them.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if d.bom {
		buf.Write(utf8BOM)
	}
	if _, err := d.tree.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize project file: %w", err)
	}
	if d.crlf {
		return bytes.ReplaceAll(buf.Bytes(), []byte("\n"), []byte("\r\n")), nil
	}
	return buf.Bytes(), nil
}

// Save overwrites the original file with the current document.
func (d *Document) Save() error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.Path, data, d.mode); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}
