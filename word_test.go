package translit

import "testing"

func TestWordAccessors(t *testing.T) {
	w := MakeWord("Вий")
	if w.Len() != 3 {
		t.Errorf("Len() should be 3, is %d", w.Len())
	}
	if r, ok := w.At(0); !ok || r != 'В' {
		t.Errorf("At(0) should be 'В', is %#U (ok=%v)", r, ok)
	}
	if _, ok := w.At(3); ok {
		t.Error("At(3) on a 3-rune word should report no such rune")
	}
	if _, ok := w.Prev(0); ok {
		t.Error("Prev(0) should report no such neighbor")
	}
	if r, ok := w.Prev(1); !ok || r != 'В' {
		t.Errorf("Prev(1) should be 'В', is %#U (ok=%v)", r, ok)
	}
	if _, ok := w.Next(2); ok {
		t.Error("Next() at the last rune should report no such neighbor")
	}
	if !w.IsLast(2) {
		t.Error("IsLast(2) should be true for a 3-rune word")
	}
	if w.IsLast(1) {
		t.Error("IsLast(1) should be false for a 3-rune word")
	}
}

func TestEmptyWord(t *testing.T) {
	w := MakeWord("")
	if w.Len() != 0 {
		t.Errorf("empty word should have length 0, has %d", w.Len())
	}
	if w.IsLast(0) {
		t.Error("IsLast() should be false for the empty word")
	}
	if _, ok := w.At(0); ok {
		t.Error("At(0) on the empty word should report no such rune")
	}
}

func TestWithCaseOf(t *testing.T) {
	cases := []struct {
		src       rune
		candidate string
		want      string
	}{
		{'Е', "Je", "Je"},
		{'е', "Je", "je"},
		{'Х', "Hh", "Hh"},
		{'х', "Hh", "hh"},
		{'Щ', "Štš", "Štš"},
		{'щ', "Štš", "štš"},
		{'ь', "J", "j"},
	}
	for _, c := range cases {
		if got := WithCaseOf(c.src, c.candidate); got != c.want {
			t.Errorf("WithCaseOf(%#U, %q) = %q, should be %q", c.src, c.candidate, got, c.want)
		}
	}
}

func TestWordPool(t *testing.T) {
	wp := BorrowWord("Сергей")
	if wp.String() != "Сергей" {
		t.Errorf("borrowed word should read back as input, is %q", wp.String())
	}
	ReleaseWord(wp)
	wp = BorrowWord("с")
	if wp.Len() != 1 {
		t.Errorf("re-borrowed buffer should hold 1 rune, holds %d", wp.Len())
	}
	ReleaseWord(wp)
}
