package telemetry

import (
	"mxchip-go/errcode"
	"mxchip-go/x/conv"
	"mxchip-go/x/dtoa"
)

// Writer builds one flat JSON object in caller storage without allocating.
// The first error sticks; later calls are no-ops and Finish reports it.
type Writer struct {
	buf     []byte // len = used, cap = capacity
	f       *dtoa.Formatter
	n       int // properties written
	closed  bool
	err     error
	scratch [48]byte
}

// NewWriter starts an object in dst. A nil formatter selects dtoa.Default.
func NewWriter(dst []byte, f *dtoa.Formatter) *Writer {
	if f == nil {
		f = dtoa.Default
	}
	w := &Writer{buf: dst[:0:len(dst)], f: f}
	w.raw("{")
	return w
}

// Float writes name with v rounded to at most digits fractional digits.
// A value the formatter cannot render (NaN, Inf, too long) fails the writer
// with errcode.InvalidValue.
func (w *Writer) Float(name string, v float64, digits int) {
	if w.err != nil {
		return
	}
	s := w.f.Format(w.scratch[:], v, dtoa.AtMost(digits))
	if len(s) == 0 {
		w.fail(errcode.InvalidValue, name)
		return
	}
	w.key(name)
	w.rawBytes(s)
}

func (w *Writer) Int(name string, v int64) {
	if w.err != nil {
		return
	}
	n, _ := conv.PutInt(w.scratch[:], v)
	w.key(name)
	w.rawBytes(w.scratch[:n])
}

func (w *Writer) Bool(name string, v bool) {
	w.key(name)
	if v {
		w.raw("true")
	} else {
		w.raw("false")
	}
}

func (w *Writer) String(name, v string) {
	w.key(name)
	w.quoted(v)
}

// Finish closes the object and returns it, or the first error.
func (w *Writer) Finish() ([]byte, error) {
	if !w.closed {
		w.raw("}")
		w.closed = true
	}
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

func (w *Writer) key(name string) {
	if w.n > 0 {
		w.raw(",")
	}
	w.quoted(name)
	w.raw(":")
	w.n++
}

// quoted writes s as a JSON string, escaping quotes, backslashes and
// control characters.
func (w *Writer) quoted(s string) {
	const hexd = "0123456789abcdef"
	w.raw(`"`)
	for i := 0; i < len(s) && w.err == nil; i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			w.rawBytes([]byte{'\\', c})
		case c == '\n':
			w.raw(`\n`)
		case c == '\r':
			w.raw(`\r`)
		case c == '\t':
			w.raw(`\t`)
		case c < 0x20:
			w.rawBytes([]byte{'\\', 'u', '0', '0', hexd[c>>4], hexd[c&0xF]})
		default:
			w.rawBytes([]byte{c})
		}
	}
	w.raw(`"`)
}

func (w *Writer) raw(s string) {
	if w.err != nil {
		return
	}
	if len(w.buf)+len(s) > cap(w.buf) {
		w.fail(errcode.BufferFull, "")
		return
	}
	w.buf = append(w.buf, s...)
}

func (w *Writer) rawBytes(p []byte) {
	if w.err != nil {
		return
	}
	if len(w.buf)+len(p) > cap(w.buf) {
		w.fail(errcode.BufferFull, "")
		return
	}
	w.buf = append(w.buf, p...)
}

func (w *Writer) fail(c errcode.Code, property string) {
	w.err = &errcode.E{C: c, Op: "telemetry", Msg: property}
}
