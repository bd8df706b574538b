package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tuumbleweed/xerr"
)

func TestErrorText(t *testing.T) {
	e := xerr.NewError(fmt.Errorf("boom"), "render preview", "INV-001")

	text := errorText(e)
	if text == "" {
		t.Fatal("errorText returned an empty message for a populated error")
	}
	if !strings.Contains(text, "boom") {
		t.Errorf("errorText = %q, want the underlying error message included", text)
	}

	if got := errorText(nil); got != "" {
		t.Errorf("errorText(nil) = %q, want empty", got)
	}
}

func TestAttachmentFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "INV-042", want: "INV-042"},
		{name: "quotes stripped", input: `INV"042"`, want: "INV042"},
		{name: "backslash stripped", input: `INV\042`, want: "INV042"},
		{name: "header injection stripped", input: "INV-042\r\nSet-Cookie: x=1", want: "INV-042Set-Cookie: x=1"},
		{name: "empty falls back", input: "", want: "invoice"},
		{name: "control chars only falls back", input: "\r\n\t", want: "invoice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attachmentFilename(tt.input); got != tt.want {
				t.Errorf("attachmentFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
