//go:build rp2040 || rp2350

package fmtx

import (
	"io"

	"fadecode-go/x/strconvx"
)

// DefaultOutput is used by Print/Printf/Println on MCU builds.
// Platform bring-up points it at the console UART.
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Public API (signatures match fmt) ---

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var b builder
	b.format(format, a...)
	return w.Write(b.buf)
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

func Sprint(a ...any) string {
	var b builder
	b.join(a)
	return string(b.buf)
}

func Print(a ...any) (int, error) {
	var b builder
	b.join(a)
	return DefaultOutput.Write(b.buf)
}

func Println(a ...any) (int, error) {
	var b builder
	b.join(a)
	b.str("\r\n")
	return DefaultOutput.Write(b.buf)
}

// --- Internals: tiny formatter subset ---
// Supports: %s %d %x %v %t %% and a width for %d/%s. No flags.

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }

type builder struct{ buf []byte }

func (b *builder) byte(c byte)  { b.buf = append(b.buf, c) }
func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) join(a []any) {
	for i, v := range a {
		if i > 0 {
			b.byte(' ')
		}
		b.any(v)
	}
}

func (b *builder) any(v any) {
	switch x := v.(type) {
	case string:
		b.str(x)
	case error:
		b.str(x.Error())
	case interface{ String() string }:
		b.str(x.String())
	case bool:
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
	default:
		if i, ok := toI64(v); ok {
			b.str(strconvx.FormatInt(i, 10))
			return
		}
		if u, ok := toU64(v); ok {
			b.str(strconvx.FormatUint(u, 10))
			return
		}
		b.str("<?>")
	}
}

func toI64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	}
	return 0, false
}

func toU64(v any) (uint64, bool) {
	switch t := v.(type) {
	case uint:
		return uint64(t), true
	case uint8:
		return uint64(t), true
	case uint16:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case uint64:
		return t, true
	case uintptr:
		return uint64(t), true
	}
	return 0, false
}

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			b.byte(format[i])
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.byte('%')
			i += 2
			continue
		}
		i++
		width := 0
		for i < len(format) && '0' <= format[i] && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) || ai >= len(args) {
			return
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		var s string
		switch verb {
		case 'd', 's', 'v', 't':
			var sb builder
			sb.any(arg)
			s = string(sb.buf)
		case 'x':
			if u, ok := toU64(arg); ok {
				s = strconvx.FormatUint(u, 16)
			} else if n, ok := toI64(arg); ok {
				s = strconvx.FormatInt(n, 16)
			}
		default:
			b.byte('%')
			b.byte(verb)
			continue
		}
		for pad := width - len(s); pad > 0; pad-- {
			b.byte(' ')
		}
		b.str(s)
	}
}
