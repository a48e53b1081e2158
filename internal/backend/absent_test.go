package backend

import "testing"

func TestCartAbsentShapes(t *testing.T) {
	absent := []any{
		nil,
		[]any{},
		map[string]any{},
	}
	for _, payload := range absent {
		if !cartAbsent(payload) {
			t.Errorf("cartAbsent(%#v) = false, want true", payload)
		}
	}

	present := []any{
		[]any{map[string]any{"id": 1}},
		map[string]any{"id": 1},
		"weird",
	}
	for _, payload := range present {
		if cartAbsent(payload) {
			t.Errorf("cartAbsent(%#v) = true, want false", payload)
		}
	}
}

func TestKindFromStatus(t *testing.T) {
	cases := map[int]Kind{
		400: KindValidation,
		401: KindUnauthorized,
		403: KindUnauthorized,
		404: KindNotFound,
		409: KindUnknown,
		422: KindValidation,
		500: KindTransient,
		503: KindTransient,
	}
	for status, want := range cases {
		if got := kindFromStatus(status); got != want {
			t.Errorf("kindFromStatus(%d) = %s, want %s", status, got, want)
		}
	}
}
