package pptx

import "encoding/xml"

// XML mapping structures for the parts of a slide the extractor reads.
// Only shape text content is mapped; positioning, formatting, and themes
// are ignored.

type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

type spTreeXML struct {
	Sp    []spXML    `xml:"sp"`
	GrpSp []grpSpXML `xml:"grpSp"`
}

type grpSpXML struct {
	Sp    []spXML    `xml:"sp"`
	GrpSp []grpSpXML `xml:"grpSp"`
}

type spXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}

type txBodyXML struct {
	P []pXML `xml:"p"`
}

type pXML struct {
	R []rXML `xml:"r"`
}

type rXML struct {
	T string `xml:"t"`
}
