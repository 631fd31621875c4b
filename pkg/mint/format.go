package mint

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/mint/pkg/textutil"
)

// escapedArg formats its value with the caller's verb, then escapes it.
type escapedArg struct {
	v interface{}
}

func (e escapedArg) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, textutil.Escape(fmt.Sprintf(fmt.FormatString(f, verb), e.v)))
}

// escapeFormat prepares format and args for fmt.Sprintf so that no
// argument prints as markup. Numbers and booleans are passed unchanged and
// still serve as `*` width or precision. fmt prints %T without calling
// Format, so each %T becomes %s over the escaped type name.
func escapeFormat(format string, args []interface{}) (string, []interface{}) {
	escaped := make([]interface{}, len(args))
	for i, a := range args {
		if carriesText(a) {
			escaped[i] = escapedArg{a}
		} else {
			escaped[i] = a
		}
	}

	verbs := typeVerbs(format)
	if len(verbs) == 0 {
		return format, escaped
	}

	b := []byte(format)
	for pos, idx := range verbs {
		if idx >= len(args) {
			continue
		}
		b[pos] = 's'
		escaped[idx] = textutil.Escape(fmt.Sprintf("%T", args[idx]))
	}
	return string(b), escaped
}

// carriesText reports whether v can print as something other than a
// number or a boolean.
func carriesText(v interface{}) bool {
	switch v.(type) {
	case nil:
		return false
	case string, []byte, error, fmt.Stringer, fmt.Formatter, fmt.GoStringer:
		return true
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	}
	return true
}

// typeVerbs maps the byte offset of every %T verb in format to the index
// of the argument it prints.
func typeVerbs(format string) map[int]int {
	var verbs map[int]int
	arg := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		i, arg = scanArgIndex(format, i, arg)
		i, arg = scanNumber(format, i, arg)
		if i < len(format) && format[i] == '.' {
			i++
			i, arg = scanArgIndex(format, i, arg)
			i, arg = scanNumber(format, i, arg)
		}
		i, arg = scanArgIndex(format, i, arg)
		if i >= len(format) {
			break
		}

		switch format[i] {
		case '%':
		case 'T':
			if verbs == nil {
				verbs = make(map[int]int)
			}
			verbs[i] = arg
			arg++
		default:
			arg++
		}
	}
	return verbs
}

// scanArgIndex reads an explicit [n] argument index at i.
func scanArgIndex(format string, i, arg int) (int, int) {
	if i >= len(format) || format[i] != '[' {
		return i, arg
	}
	end := strings.IndexByte(format[i:], ']')
	if end < 0 {
		return i, arg
	}
	n, err := strconv.Atoi(format[i+1 : i+end])
	if err != nil || n < 1 {
		return i, arg
	}
	return i + end + 1, n - 1
}

// scanNumber skips a width or precision. A `*` consumes an argument.
func scanNumber(format string, i, arg int) (int, int) {
	if i < len(format) && format[i] == '*' {
		return i + 1, arg + 1
	}
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	return i, arg
}
