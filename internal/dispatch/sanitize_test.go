package dispatch

import "testing"

func TestSanitizeValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"owner", "owner"},
		{" owner ", "owner"},
		{"'owner'", "owner"},
		{`"owner"`, "owner"},
		{" 'owner' ", "owner"},
		{`" 'owner' "`, "owner"},
		{"", ""},
		{"'", "'"},
		{"it's", "it's"},
	}
	for _, c := range cases {
		if got := SanitizeValue(c.in); got != c.want {
			t.Errorf("SanitizeValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeWorkflow(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"audit.yml", "audit.yml"},
		{".github/workflows/audit.yml", "audit.yml"},
		{"/.github/workflows/audit.yml", "audit.yml"},
		{"/audit.yml", "audit.yml"},
		{"'.github/workflows/audit.yml'", "audit.yml"},
		{"  .github/workflows//audit.yml ", "audit.yml"},
	}
	for _, c := range cases {
		if got := SanitizeWorkflow(c.in); got != c.want {
			t.Errorf("SanitizeWorkflow(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{" 'owner' ", ".github/workflows/audit.yml", "plain", `"x"`}
	for _, in := range inputs {
		once := SanitizeValue(in)
		if twice := SanitizeValue(once); twice != once {
			t.Errorf("SanitizeValue not idempotent on %q: %q != %q", in, once, twice)
		}
		onceW := SanitizeWorkflow(in)
		if twiceW := SanitizeWorkflow(onceW); twiceW != onceW {
			t.Errorf("SanitizeWorkflow not idempotent on %q: %q != %q", in, onceW, twiceW)
		}
	}
}

func TestConfigSanitized(t *testing.T) {
	cfg := Config{
		Token:    " 'tok' ",
		Owner:    `"own"`,
		Repo:     " repo ",
		Workflow: ".github/workflows/audit.yml",
		Ref:      "'main'",
		APIBase:  " https://api.github.com ",
	}.Sanitized()

	if cfg.Token != "tok" || cfg.Owner != "own" || cfg.Repo != "repo" {
		t.Errorf("unexpected sanitized config: %+v", cfg)
	}
	if cfg.Workflow != "audit.yml" {
		t.Errorf("workflow = %q, want audit.yml", cfg.Workflow)
	}
	if cfg.Ref != "main" {
		t.Errorf("ref = %q, want main", cfg.Ref)
	}
}

func TestConfigMissing(t *testing.T) {
	m := Config{Owner: "o"}.Missing()
	if !m.Token || m.Owner || !m.Repo {
		t.Errorf("unexpected missing flags: %+v", m)
	}
	if !m.Any() {
		t.Error("expected Any() = true")
	}

	full := Config{Token: "t", Owner: "o", Repo: "r"}.Missing()
	if full.Any() {
		t.Errorf("expected no missing fields, got %+v", full)
	}
}
