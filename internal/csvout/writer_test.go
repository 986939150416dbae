package csvout

import (
	"bytes"
	"errors"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Cylinder", want: "Cylinder"},
		{name: "empty", in: "", want: ""},
		{name: "comma", in: "Prism, Cone", want: `"Prism, Cone"`},
		{name: "quote", in: `say "hi"`, want: `"say ""hi"""`},
		{name: "newline", in: "a\nb", want: "\"a\nb\""},
		{name: "carriage return", in: "a\rb", want: "\"a\rb\""},
		{name: "markup", in: "Cone<br>", want: `"Cone<br>"`},
		{name: "closing angle only", in: "a>b", want: "a>b"},
		{name: "svg attributes", in: `<svg width="200">`, want: `"<svg width=""200"">"`},
		{name: "marathi", in: "शंकू", want: "शंकू"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Fatalf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Write([]string{"Sr. No", "Question"}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := w.Write([]string{"1", "Prism, Cone", "<b>x</b>"}); err != nil {
		t.Fatalf("write row: %v", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := "Sr. No,Question\n1,\"Prism, Cone\",\"<b>x</b>\"\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_WriteNullable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	v := "Cone"
	if err := w.WriteNullable([]*string{&v, nil, &v}); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Flush()

	if got, want := buf.String(), "Cone,,Cone\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriter_FlushError(t *testing.T) {
	w := NewWriter(failingWriter{})

	if err := w.Write([]string{"a"}); err != nil {
		t.Fatalf("buffered write should not fail: %v", err)
	}
	w.Flush()

	if !errors.Is(w.Error(), errDiskFull) {
		t.Fatalf("Error() = %v, want %v", w.Error(), errDiskFull)
	}
	if err := w.Write([]string{"b"}); !errors.Is(err, errDiskFull) {
		t.Fatalf("write after failure = %v, want sticky %v", err, errDiskFull)
	}
}
