package inspect

import (
	"errors"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

// decodeDocs returns an iterator over the documents in r. A decoding error is
// yielded as the last element.
func decodeDocs(r io.Reader) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		dec := yaml.NewDecoder(r)
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// decodeValue decodes a single value, such as one line of interactive input.
func decodeValue(s string) (any, error) {
	var v any
	err := yaml.Unmarshal([]byte(s), &v)
	return v, err
}
