package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"src.echolib.dev/pkg/repr"
)

// Input writes prompt if it is not empty, and reads one line, without the
// line terminator. At the end of input, it returns the partial line read, or
// "" and io.EOF if nothing was read.
func (c *Console) Input(prompt string) (string, error) {
	if prompt != "" {
		if err := c.write(prompt); err != nil {
			return "", err
		}
	}
	c.inMutex.Lock()
	defer c.inMutex.Unlock()
	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ErrUnsupportedType is returned by InputAs when the target type has no
// conversion from text.
var ErrUnsupportedType = errors.New("unsupported type")

// InputAs is like Input, but converts the line to T. It supports strings,
// booleans, numbers and repr.Char, as well as types based on them. If the line
// cannot be converted, it returns the zero value and false.
func InputAs[T any](c *Console, prompt string) (T, bool, error) {
	var v T
	line, err := c.Input(prompt)
	if err != nil {
		return v, false, err
	}
	if err := parse(line, &v); err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			return v, false, err
		}
		logger.Printf("cannot convert %q: %v", line, err)
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

func parse(s string, p any) error {
	if c, ok := p.(*repr.Char); ok {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return fmt.Errorf("need exactly one character, got %d", utf8.RuneCountInString(s))
		}
		*c = repr.Char(r)
		return nil
	}
	rv := reflect.ValueOf(p).Elem()
	trimmed := strings.TrimSpace(s)
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(trimmed, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(trimmed, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(trimmed, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("%w %s", ErrUnsupportedType, repr.FormatTypeName(rv.Type()))
	}
	return nil
}
