package moderation

import (
	"strings"
	"testing"

	"larpit/larp-directory/internal/model/larp"
)

func validInput() ContentInput {
	return ContentInput{
		Name:     "Velmun varjot",
		Tagline:  "Kartanolarppi 1920-luvun Suomessa",
		Language: "fi",
		StartsAt: "2026-06-12",
		EndsAt:   "2026-06-14",
	}
}

// TestValidateContent 测试内容校验
func TestValidateContent(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ContentInput)
		wantField string
	}{
		{"valid input", func(in *ContentInput) {}, ""},
		{"missing name", func(in *ContentInput) { in.Name = "" }, "name"},
		{"whitespace only name", func(in *ContentInput) { in.Name = "   " }, "name"},
		{"name too long", func(in *ContentInput) { in.Name = strings.Repeat("a", 201) }, "name"},
		{"tagline too long", func(in *ContentInput) { in.Tagline = strings.Repeat("a", 501) }, "tagline"},
		{"description too long", func(in *ContentInput) { in.Description = strings.Repeat("a", 2001) }, "description"},
		{"unknown language", func(in *ContentInput) { in.Language = "de" }, "language"},
		{"bad date format", func(in *ContentInput) { in.StartsAt = "12.06.2026" }, "starts_at"},
		{"date with time", func(in *ContentInput) { in.EndsAt = "2026-06-14T12:00:00Z" }, "ends_at"},
		{"negative min participants", func(in *ContentInput) {
			n := -1
			in.MinParticipants = &n
		}, "min_participants"},
		{"unknown openness", func(in *ContentInput) { in.Openness = "secret" }, "openness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, errs := ValidateContent(in, larp.LanguageFinnish)

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}

			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

// TestValidateContentCollectsAllErrors 校验失败时报出所有出错字段
func TestValidateContentCollectsAllErrors(t *testing.T) {
	in := ContentInput{
		Name:     "",
		Language: "de",
		StartsAt: "not-a-date",
	}

	_, errs := ValidateContent(in, larp.LanguageFinnish)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
}

// TestValidateContentDefaultLanguage 语言缺省时落到配置的默认语言
func TestValidateContentDefaultLanguage(t *testing.T) {
	in := validInput()
	in.Language = ""

	c, errs := ValidateContent(in, larp.LanguageSwedish)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.Language != larp.LanguageSwedish {
		t.Errorf("Language = %q, want %q", c.Language, larp.LanguageSwedish)
	}
}

// TestValidateContentTrims 文本字段去除首尾空白
func TestValidateContentTrims(t *testing.T) {
	in := validInput()
	in.Name = "  Velmun varjot  "
	in.Tagline = "\ttagline\n"

	c, errs := ValidateContent(in, larp.LanguageFinnish)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.Name != "Velmun varjot" {
		t.Errorf("Name = %q, want trimmed", c.Name)
	}
	if c.Tagline != "tagline" {
		t.Errorf("Tagline = %q, want trimmed", c.Tagline)
	}
}

// TestCompactIdempotent 压缩操作幂等
func TestCompactIdempotent(t *testing.T) {
	empty := "   "
	c := Content{
		Name:     "  Name  ",
		StartsAt: &empty,
	}

	once := Compact(c)
	twice := Compact(once)

	if once.StartsAt != nil {
		t.Error("blank date should compact to nil")
	}
	if twice.Name != once.Name || twice.StartsAt != once.StartsAt {
		t.Error("Compact should be idempotent")
	}
}

// TestValidateLinks 测试外链校验
func TestValidateLinks(t *testing.T) {
	links := []LinkSpec{
		{Type: larp.LinkTypeHomepage, URL: "https://example.com"},
		{Type: "blog", URL: "https://example.com/blog"},
		{Type: larp.LinkTypePhotos, URL: ""},
	}

	errs := ValidateLinks(links)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "links[1].type" {
		t.Errorf("first error field = %q", errs[0].Field)
	}
	if errs[1].Field != "links[2].url" {
		t.Errorf("second error field = %q", errs[1].Field)
	}
}

// TestCheckCatAnswer 反自动化问题：包含任一语言的"猫"即通过
func TestCheckCatAnswer(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"kissa", true},
		{"Kissa", true},
		{"KISSA!", true},
		{"se on kisu", true},
		{"mirri", true},
		{"cat", true},
		{"katt", true},
		{"koira", false},
		{"dog", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			if got := CheckCatAnswer(tt.answer); got != tt.expected {
				t.Errorf("CheckCatAnswer(%q) = %v, want %v", tt.answer, got, tt.expected)
			}
		})
	}
}

// TestParseContentRoundTrip 快照序列化后读回保持等价
func TestParseContentRoundTrip(t *testing.T) {
	c, errs := ValidateContent(validInput(), larp.LanguageFinnish)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	raw, err := MarshalContent(c)
	if err != nil {
		t.Fatalf("MarshalContent: %v", err)
	}

	parsed, errs := ParseContent(raw)
	if len(errs) != 0 {
		t.Fatalf("ParseContent errors: %v", errs)
	}
	if parsed.Name != c.Name || parsed.Language != c.Language {
		t.Errorf("round trip mismatch: %+v vs %+v", parsed, c)
	}
	if parsed.StartsAt == nil || *parsed.StartsAt != "2026-06-12" {
		t.Errorf("StartsAt lost in round trip")
	}
}

// TestParseContentRejectsBadSnapshot 脏快照在读取时被再校验拦下
func TestParseContentRejectsBadSnapshot(t *testing.T) {
	if _, errs := ParseContent(`{"name":""}`); len(errs) == 0 {
		t.Error("snapshot without name should fail revalidation")
	}
	if _, errs := ParseContent(`not json`); len(errs) == 0 {
		t.Error("malformed snapshot should fail")
	}
}
