package policy

import (
	"testing"

	"github.com/curl2strm/curl2strm/pkg/ir"
)

func TestFilter_DefaultAllowList(t *testing.T) {
	headers := ir.Headers{
		{Name: "Authorization", Value: "Bearer T"},
		{Name: "User-Agent", Value: "UA"},
		{Name: "X-Custom", Value: "x"},
		{Name: "COOKIE", Value: "a=1"},
		{Name: "Referer", Value: "https://ref"},
	}

	got := Default().Filter(headers, false)
	want := []string{"User-Agent", "COOKIE", "Referer"}
	if len(got) != len(want) {
		t.Fatalf("names=%q, want=%q", got.Names(), want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("got[%d]=%q, want=%q", i, got[i].Name, want[i])
		}
	}
}

func TestFilter_IncludeAll(t *testing.T) {
	headers := ir.Headers{
		{Name: "Authorization", Value: "Bearer T"},
		{Name: "X-Custom", Value: "x"},
	}
	got := Default().Filter(headers, true)
	if len(got) != len(headers) {
		t.Fatalf("len=%d, want=%d", len(got), len(headers))
	}
	for i := range headers {
		if got[i] != headers[i] {
			t.Errorf("got[%d]=%+v, want=%+v", i, got[i], headers[i])
		}
	}
}

func TestFilter_EmptyHeaders(t *testing.T) {
	if got := Default().Filter(nil, false); len(got) != 0 {
		t.Errorf("len=%d, want=0", len(got))
	}
}

func TestNew_Override(t *testing.T) {
	p := New([]string{"X-Custom", " Accept "})
	if !p.Allows("x-custom") {
		t.Error("x-custom should be allowed")
	}
	if !p.Allows("ACCEPT") {
		t.Error("accept should be allowed (trimmed, case-insensitive)")
	}
	if p.Allows("cookie") {
		t.Error("cookie should not be allowed by the override")
	}
}
