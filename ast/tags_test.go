package ast

import "testing"

func TestIsVoidTag(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"br", true},
		{"BR", true},
		{"img", true},
		{"input", true},
		{"div", false},
		{"span", false},
		{"my-widget", false},
	}
	for _, c := range cases {
		if got := IsVoidTag(c.name); got != c.want {
			t.Errorf("IsVoidTag(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsRawTextTag(t *testing.T) {
	for _, name := range []string{"script", "style", "textarea", "title", "SCRIPT"} {
		if !IsRawTextTag(name) {
			t.Errorf("IsRawTextTag(%q) = false, want true", name)
		}
	}
	if IsRawTextTag("div") {
		t.Error("IsRawTextTag(div) = true, want false")
	}
}

func TestIsPreformattedTag(t *testing.T) {
	for _, name := range []string{"pre", "textarea", "script", "style"} {
		if !IsPreformattedTag(name) {
			t.Errorf("IsPreformattedTag(%q) = false, want true", name)
		}
	}
	if IsPreformattedTag("p") {
		t.Error("IsPreformattedTag(p) = true, want false")
	}
}

func TestIsInlineTag(t *testing.T) {
	for _, name := range []string{"span", "a", "b", "img", "SPAN"} {
		if !IsInlineTag(name) {
			t.Errorf("IsInlineTag(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"div", "p", "section"} {
		if IsInlineTag(name) {
			t.Errorf("IsInlineTag(%q) = true, want false", name)
		}
	}
}

func TestIsComponentTagName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"", false},
		{"div", false},
		{"MyComponent", true},
		{"myComponent", true},
		{"my-component", true},
		{"my-widget-thing", true},
		{"span", false},
	}
	for _, c := range cases {
		if got := IsComponentTagName(c.name); got != c.want {
			t.Errorf("IsComponentTagName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestHasMultipleWordSegments(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"my-component", true},
		{"my", false},
		{"MyComponent", true},
		{"div", false},
		{"a-b-c", true},
	}
	for _, c := range cases {
		if got := HasMultipleWordSegments(c.name); got != c.want {
			t.Errorf("HasMultipleWordSegments(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
