package skillcodec

import (
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"Go"},
		{"Go", "PostgreSQL", "Docker"},
		{"C++", "gRPC"},
	}
	for _, tokens := range cases {
		got := Decode(Encode(tokens))
		if !reflect.DeepEqual(got, tokens) {
			t.Fatalf("round trip %v: got %v", tokens, got)
		}
	}
}

func TestDecodeEmptyString(t *testing.T) {
	got := Decode("")
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Encode([]string{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestDecodeKeepsOrder(t *testing.T) {
	got := Decode("Python,SQL,AWS")
	want := []string{"Python", "SQL", "AWS"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
