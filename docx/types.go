package docx

import "encoding/xml"

// XML mapping structures for the parts of word/document.xml the extractor
// reads. Only paragraph text content is mapped; formatting, styles, and
// numbering are ignored.

type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Text   []textXML  `xml:"t"`
	Tabs   []tabXML   `xml:"tab"`
	Breaks []breakXML `xml:"br"`
}

type textXML struct {
	Value string `xml:",chardata"`
}

type tabXML struct{}

type breakXML struct {
	Type string `xml:"type,attr"`
}
