// core/classlist/parser.go
package classlist

import (
	"bufio"
	"fmt"
	"io"
)

// openTag is the marker that starts a subsample block. The terminating '>' is
// consumed but not part of the comparison.
const openTag = "<CLASS"

// Parse reads a classification stream (.pcl or .acl, the grammar is the same)
// and materializes the full ClassificationList before returning.
//
// The tokenizer has two states: scanning outside a tag, and inside a
// subsample body. A body is terminated by '<', and that same '<' begins the
// next tag, so it is carried over instead of re-read; the two states never
// disagree on stream position.
func Parse(r io.Reader) (*ClassificationList, error) {
	br := bufio.NewReader(r)
	list := &ClassificationList{}
	ssn := uint32(0)

	carry := false // the '<' that ended the previous body already consumed
	for {
		if !carry {
			found, err := skipToTagStart(br)
			if err != nil {
				return nil, err
			}
			if !found {
				break
			}
		}
		carry = false

		tag, err := readTag(br)
		if err == io.EOF {
			break // tag never closed: drop it
		}
		if err != nil {
			return nil, err
		}
		if tag != openTag {
			if err := discardLine(br); err != nil {
				return nil, err
			}
			continue
		}

		ssn++
		recs, terminated, err := subsampleBody(br, ssn)
		if err != nil {
			return nil, err
		}
		list.subsamples = append(list.subsamples, recs)
		if !terminated {
			break // stream ended inside the body
		}
		carry = true
	}
	return list, nil
}

// skipToTagStart consumes input until the '<' that may begin a tag, skipping
// whitespace and discarding any line whose first non-blank character is not
// '<'. Returns false at end of stream. The '<' itself is consumed.
func skipToTagStart(br *bufio.Reader) (bool, error) {
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("classlist: read: %w", err)
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return true, nil
		default:
			if err := discardLine(br); err != nil {
				return false, err
			}
		}
	}
}

// readTag accumulates the tag whose '<' has already been consumed, up to the
// next '>' (consumed, excluded). Returns io.EOF if the stream ends first.
func readTag(br *bufio.Reader) (string, error) {
	buf := []byte{'<'}
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("classlist: read tag: %w", err)
		}
		if c == '>' {
			return string(buf), nil
		}
		buf = append(buf, c)
	}
}

// subsampleBody reads the comma-separated labels of one subsample. Each
// delimiter (',' or the terminating '<') emits one record, an empty token
// becoming SentinelNone; the one exception is a body terminated by '<' before
// any delimiter or label character, which emits nothing. A partial token at
// end of stream is dropped. Reports whether the body was terminated by '<'
// (as opposed to running out of input).
func subsampleBody(br *bufio.Reader, ssn uint32) ([]PatchClassification, bool, error) {
	var (
		recs  []PatchClassification
		token []byte
		index uint32
	)
	emit := func() {
		label := SentinelNone
		if len(token) > 0 {
			label = string(token)
			token = token[:0]
		}
		recs = append(recs, PatchClassification{
			SubsampleNumber: ssn,
			PatchIndex:      index,
			Classification:  label,
		})
		index++
	}
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return recs, false, nil
		}
		if err != nil {
			return recs, false, fmt.Errorf("classlist: read body: %w", err)
		}
		switch c {
		case ',':
			emit()
		case '<':
			if index > 0 || len(token) > 0 {
				emit()
			}
			return recs, true, nil
		default:
			token = append(token, c)
		}
	}
}

// discardLine drops input through the next newline. End of stream is fine.
func discardLine(br *bufio.Reader) error {
	if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("classlist: discard line: %w", err)
	}
	return nil
}
