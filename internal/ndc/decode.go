package ndc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyInput is returned by Decode when the reader holds no element.
var ErrEmptyInput = errors.New("ndc: empty document")

// Decode reads an XML document into a Node tree. Namespace prefixes are
// dropped and a SOAP Envelope/Body wrapper is removed, so the returned
// node is the payload element itself (for example IATA_SeatAvailabilityRS).
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ndc: decode: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := NewNode(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.SetAttr(a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				root = n
			} else {
				stack[len(stack)-1].Append(n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, ErrEmptyInput
	}
	return unwrapSOAP(root), nil
}

func unwrapSOAP(root *Node) *Node {
	if root.Name != "Envelope" {
		return root
	}
	body := root.Child("Body")
	if body == nil {
		return root
	}
	names := body.ChildNames()
	if len(names) == 0 {
		return body
	}
	return body.Child(names[0])
}
