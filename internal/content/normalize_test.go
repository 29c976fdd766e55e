package content

import "testing"

func TestNormalizeTitleKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Crimson Ledger", "the crimson ledger"},
		{"  The  Crimson   Ledger!! ", "the crimson ledger"},
		{"Qal’Athar the Undying", "qalathar the undying"},
		{"Qal'Athar the Undying", "qalathar the undying"},
		{"Blood‑Oath of the Steppe", "blood oath of the steppe"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeTitleKey(c.in); got != c.want {
			t.Errorf("NormalizeTitleKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTitleKeyCurlyAndStraightAgree(t *testing.T) {
	if NormalizeTitleKey("Wolf’s Bane") != NormalizeTitleKey("Wolf's Bane") {
		t.Error("curly and straight apostrophes should normalize identically")
	}
}

func TestNameMentioned(t *testing.T) {
	text := "The crown sat heavy. A crow watched from the gibbet."

	if !NameMentioned("crow", text) {
		t.Error("expected whole-word match for crow")
	}
	if NameMentioned("row", text) {
		t.Error("row should not match inside crow or crown")
	}
	if !NameMentioned("CROWN", text) {
		t.Error("match should be case-insensitive")
	}
	if NameMentioned("", text) {
		t.Error("empty name should never match")
	}
}

func TestNameMentionedStripsParenthetical(t *testing.T) {
	text := "Vorna raised the axe."
	if !NameMentioned("Vorna (the Younger)", text) {
		t.Error("trailing parenthetical should be ignored")
	}
}

func TestEntityMentionedAliases(t *testing.T) {
	e := &Entity{Name: "Qal’Athar", Aliases: []string{"the Undying"}}
	text := "They feared the Undying above all."

	if !EntityMentioned("characters", e, text) {
		t.Error("characters should match via alias")
	}
	if EntityMentioned("places", e, text) {
		t.Error("non-character categories must not match via alias")
	}
}
