package model

import (
	"testing"

	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

func TestAnswer_UnmarshalKinds(t *testing.T) {
	cases := []struct {
		raw  string
		want Answer
	}{
		{raw: `2`, want: IndexAnswer(2)},
		{raw: `"main"`, want: TextAnswer("main")},
	}
	for _, tc := range cases {
		var got Answer
		if err := shared.Unmarshal([]byte(tc.raw), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("unmarshal %s: got %v want %v", tc.raw, got, tc.want)
		}
	}
}

func TestAnswer_UnmarshalRejectsOtherJSON(t *testing.T) {
	var got Answer
	if err := shared.Unmarshal([]byte(`true`), &got); err == nil {
		t.Fatalf("expected error for boolean answer, got %v", got)
	}
}

func TestAnswer_MarshalKeepsKind(t *testing.T) {
	b, err := shared.Marshal(struct {
		A Answer `json:"a"`
		B Answer `json:"b"`
	}{A: IndexAnswer(1), B: TextAnswer("1")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":1,"b":"1"}` {
		t.Fatalf("unexpected encoding: %s", b)
	}
}

func TestAnswer_EqualIsStrict(t *testing.T) {
	if IndexAnswer(1).Equal(TextAnswer("1")) {
		t.Fatalf("index 1 must not equal text \"1\"")
	}
	if !IndexAnswer(0).Equal(Answer{}) {
		t.Fatalf("zero answer should be option 0")
	}
	if PlaceholderAnswer().Equal(IndexAnswer(0)) {
		t.Fatalf("placeholder must not match option 0")
	}
}

func TestQuestion_IsCorrect(t *testing.T) {
	q := Question{CorrectAnswer: IndexAnswer(2)}
	if !q.IsCorrect(IndexAnswer(2)) {
		t.Fatalf("expected option 2 to be correct")
	}
	if q.IsCorrect(IndexAnswer(1)) || q.IsCorrect(TextAnswer("2")) {
		t.Fatalf("expected wrong answers to be rejected")
	}
}

func TestLocalizedString_GetFallsBackToEnglish(t *testing.T) {
	s := LocalizedString{En: "hello", Ja: "こんにちは"}
	if s.Get(shared.LanguageJapanese) != "こんにちは" {
		t.Fatalf("expected japanese text")
	}
	if s.Get("fr") != "hello" {
		t.Fatalf("expected english fallback")
	}
	if (LocalizedString{En: "only"}).Get(shared.LanguageJapanese) != "only" {
		t.Fatalf("expected english fallback for empty japanese")
	}
}

func TestUserProgress_RecentBadges(t *testing.T) {
	p := NewUserProgress([]string{"security"})
	if got := p.RecentBadges(3); len(got) != 0 {
		t.Fatalf("expected no badges, got %d", len(got))
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		p.Badges = append(p.Badges, Badge{ID: id})
	}
	got := p.RecentBadges(3)
	if len(got) != 3 || got[0].ID != "b" || got[2].ID != "d" {
		t.Fatalf("unexpected recent badges: %+v", got)
	}
	if !p.HasBadge("a") || p.HasBadge("z") {
		t.Fatalf("HasBadge mismatch")
	}
}
