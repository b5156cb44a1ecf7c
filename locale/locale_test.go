package locale

import (
	"context"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantLang     string
		wantRegion   string
		wantString   string
		wantTagCount int
	}{
		{
			name:         "simple language",
			raw:          "en",
			wantLang:     "en",
			wantRegion:   "",
			wantString:   "en",
			wantTagCount: 1,
		},
		{
			name:         "language with region",
			raw:          "zh-CN",
			wantLang:     "zh",
			wantRegion:   "CN",
			wantString:   "zh-CN",
			wantTagCount: 1,
		},
		{
			name:         "multiple languages with quality",
			raw:          "zh-CN,zh;q=0.9,en;q=0.8",
			wantLang:     "zh",
			wantRegion:   "CN",
			wantString:   "zh-CN",
			wantTagCount: 3,
		},
		{
			name:         "quality order",
			raw:          "en;q=0.5,zh-CN;q=0.9,ja;q=0.7",
			wantLang:     "zh",
			wantRegion:   "CN",
			wantString:   "zh-CN",
			wantTagCount: 3,
		},
		{
			name:         "with script",
			raw:          "zh-Hans-CN",
			wantLang:     "zh",
			wantRegion:   "CN",
			wantString:   "zh-Hans-CN",
			wantTagCount: 1,
		},
		{
			name:         "empty",
			raw:          "",
			wantLang:     "",
			wantRegion:   "",
			wantString:   "",
			wantTagCount: 0,
		},
		{
			name:         "wildcard",
			raw:          "*",
			wantLang:     "*",
			wantRegion:   "",
			wantString:   "*",
			wantTagCount: 1,
		},
		{
			name:         "complex",
			raw:          "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7,ja;q=0.6",
			wantLang:     "en",
			wantRegion:   "US",
			wantString:   "en-US",
			wantTagCount: 5,
		},
		{
			name:         "un m49 region",
			raw:          "es-419",
			wantLang:     "es",
			wantRegion:   "419",
			wantString:   "es-419",
			wantTagCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Parse(tt.raw)

			if got := loc.Language(); got != tt.wantLang {
				t.Errorf("Language() = %q, want %q", got, tt.wantLang)
			}
			if got := loc.Region(); got != tt.wantRegion {
				t.Errorf("Region() = %q, want %q", got, tt.wantRegion)
			}
			if got := loc.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := len(loc.Preferred); got != tt.wantTagCount {
				t.Errorf("len(Preferred) = %d, want %d", got, tt.wantTagCount)
			}
		})
	}
}

func TestParse_QualityClamped(t *testing.T) {
	loc := Parse("en;q=5,zh;q=-1")

	if got := loc.Preferred[0].Quality; got != 1.0 {
		t.Errorf("Quality = %v, want 1.0", got)
	}
	if got := loc.Preferred[1].Quality; got != 0.0 {
		t.Errorf("Quality = %v, want 0.0", got)
	}
	if got := loc.Language(); got != "en" {
		t.Errorf("Language() = %q, want en", got)
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "ordered by quality",
			raw:  "en;q=0.5,zh-CN;q=0.9",
			want: []string{"zh-CN", "en"},
		},
		{
			name: "wildcard skipped",
			raw:  "en-US,*;q=0.5",
			want: []string{"en-US"},
		},
		{
			name: "wildcard only",
			raw:  "*",
			want: []string{},
		},
		{
			name: "empty header",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw).Candidates()
			if len(got) != len(tt.want) {
				t.Fatalf("Candidates() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Candidates()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatch(t *testing.T) {
	loc := Parse("zh-CN,en;q=0.8")

	if !loc.Match("zh") {
		t.Error("Match(zh) = false, want true")
	}
	if !loc.Match("EN") {
		t.Error("Match(EN) = false, want true")
	}
	if loc.Match("ja") {
		t.Error("Match(ja) = true, want false")
	}

	var nilLocale *Locale
	if nilLocale.Match("en") {
		t.Error("nil locale Match = true, want false")
	}
}

func TestBest(t *testing.T) {
	loc := Parse("zh-CN,en;q=0.8")

	if got := loc.Best("en-US", "zh-CN", "ja-JP"); got != "zh-CN" {
		t.Errorf("Best() = %q, want zh-CN", got)
	}
	if got := loc.Best("ja-JP", "ko-KR"); got != "ja-JP" {
		t.Errorf("Best() with no match = %q, want first candidate", got)
	}
	if got := loc.Best(); got != "" {
		t.Errorf("Best() with no candidates = %q, want empty", got)
	}
}

func TestContext(t *testing.T) {
	loc := Parse("zh-CN,en;q=0.8")
	ctx := WithLocale(context.Background(), loc)

	got, ok := FromContext(ctx)
	if !ok || got != loc {
		t.Fatal("FromContext did not return stored locale")
	}

	if GetLanguage(ctx) != "zh" {
		t.Errorf("GetLanguage = %q, want zh", GetLanguage(ctx))
	}
	if GetRegion(ctx) != "CN" {
		t.Errorf("GetRegion = %q, want CN", GetRegion(ctx))
	}
	if GetLocale(ctx) != "zh-CN" {
		t.Errorf("GetLocale = %q, want zh-CN", GetLocale(ctx))
	}

	empty := context.Background()
	if GetLanguage(empty) != "" || GetRegion(empty) != "" || GetLocale(empty) != "" {
		t.Error("empty context getters should return empty strings")
	}
}
