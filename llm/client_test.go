package llm

import "testing"

func TestExtractJSONPlainObject(t *testing.T) {
	in := `{"grade": 70, "verdict": "Win"}`
	if got := ExtractJSON(in); got != in {
		t.Errorf("ExtractJSON() = %q, want input unchanged", got)
	}
}

func TestExtractJSONStripsCodeFence(t *testing.T) {
	in := "```json\n{\"grade\": 70}\n```"
	want := `{"grade": 70}`
	if got := ExtractJSON(in); got != want {
		t.Errorf("ExtractJSON() = %q, want %q", got, want)
	}
}

func TestExtractJSONIgnoresSurroundingProse(t *testing.T) {
	in := `Here is my grade: {"grade": 55, "verdict": "Fair"} Hope that helps.`
	want := `{"grade": 55, "verdict": "Fair"}`
	if got := ExtractJSON(in); got != want {
		t.Errorf("ExtractJSON() = %q, want %q", got, want)
	}
}

func TestExtractJSONNoObjectPassesThrough(t *testing.T) {
	in := "no json here"
	if got := ExtractJSON(in); got != in {
		t.Errorf("ExtractJSON() = %q, want %q", got, in)
	}
}
