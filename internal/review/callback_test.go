package review

import "testing"

func TestParseActionToggles(t *testing.T) {
	action, ok := ParseAction("fav:66f3a1b2c4d5e6f7a8b9c0d1")
	if !ok {
		t.Fatal("expected fav payload to parse")
	}
	if action.Kind != ActionFavorite || action.DocID != "66f3a1b2c4d5e6f7a8b9c0d1" {
		t.Errorf("got kind=%d id=%q", action.Kind, action.DocID)
	}

	action, ok = ParseAction("sel:abc")
	if !ok || action.Kind != ActionSelected || action.DocID != "abc" {
		t.Errorf("sel payload: ok=%v kind=%d id=%q", ok, action.Kind, action.DocID)
	}
}

func TestParseActionSteps(t *testing.T) {
	action, ok := ParseAction("next:3")
	if !ok || action.Kind != ActionNext || action.Pos != 3 {
		t.Errorf("next payload: ok=%v kind=%d pos=%d", ok, action.Kind, action.Pos)
	}

	action, ok = ParseAction("prev:1")
	if !ok || action.Kind != ActionPrevious || action.Pos != 1 {
		t.Errorf("prev payload: ok=%v kind=%d pos=%d", ok, action.Kind, action.Pos)
	}
}

func TestParseActionNoop(t *testing.T) {
	action, ok := ParseAction("noop")
	if !ok || action.Kind != ActionNoop {
		t.Errorf("noop payload: ok=%v kind=%d", ok, action.Kind)
	}
}

func TestParseActionMalformed(t *testing.T) {
	cases := []string{
		"",
		"fav",
		"fav:",
		"next:abc",
		"next:0",
		"prev:-1",
		"unknown:1",
		"::",
	}
	for _, data := range cases {
		if _, ok := ParseAction(data); ok {
			t.Errorf("ParseAction(%q) parsed, want rejection", data)
		}
	}
}

// Payloads rendered by the keyboard builder must round-trip through the
// parser.
func TestPayloadRoundTrip(t *testing.T) {
	action, ok := ParseAction(toggleData(prefixFavorite, "id-1"))
	if !ok || action.Kind != ActionFavorite || action.DocID != "id-1" {
		t.Errorf("toggle round trip failed: ok=%v %+v", ok, action)
	}

	action, ok = ParseAction(stepData(prefixNext, 12))
	if !ok || action.Kind != ActionNext || action.Pos != 12 {
		t.Errorf("step round trip failed: ok=%v %+v", ok, action)
	}
}
