package chart

import (
	"math"
	"testing"
)

func TestObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w objectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		var w objectWriter
		w.Append("z", 1).Append("a", "hello").Append("m", nil)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","m":null}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("escaped keys", func(t *testing.T) {
		var w objectWriter
		w.Append(`a"b`, true)
		got, _ := w.MarshalJSON()
		if want := `{"a\"b":true}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("markup is not escaped", func(t *testing.T) {
		var w objectWriter
		w.Append("table", `<td align="right">A & B</td>`)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"table":"<td align=\"right\">A & B</td>"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w objectWriter
		w.Append("a", 0)
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w objectWriter
		w.Append("nan", math.NaN())
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("expected an error for a NaN value")
		}
	})
}
