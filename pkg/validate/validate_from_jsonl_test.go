package validate

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestValidateJSONLStream_MixedLines(t *testing.T) {
	ctx := context.Background()
	record := UserFromJSON(NewUserValidator())

	input := strings.Join([]string{
		`{"name":"Ivan","email":"ivan@example.com"}`,
		``,
		`{"name":"","email":"no-name@example.com"}`,
		`not json at all`,
		`{"name":"Anna","email":"anna@example.com"}`,
	}, "\n")

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, record, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("want 2 valid / 2 invalid, got %+v", res)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 output lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "ivan@example.com") || !strings.Contains(lines[1], "anna@example.com") {
		t.Fatalf("unexpected output order: %q", out.String())
	}
}

func TestValidateJSONLStream_Empty(t *testing.T) {
	ctx := context.Background()
	record := OrderFromJSON(NewOrderValidator())

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, record, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 0 || out.Len() != 0 {
		t.Fatalf("want empty result, got %+v, out=%q", res, out.String())
	}
}
