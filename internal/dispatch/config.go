package dispatch

// Config holds the sanitized workflow-dispatch settings. Built once at
// startup and immutable for the process lifetime.
type Config struct {
	Token    string
	Owner    string
	Repo     string
	Workflow string
	Ref      string
	APIBase  string
}

// Sanitized returns a copy with every field normalized. Safe to call on an
// already-sanitized config.
func (c Config) Sanitized() Config {
	return Config{
		Token:    SanitizeValue(c.Token),
		Owner:    SanitizeValue(c.Owner),
		Repo:     SanitizeValue(c.Repo),
		Workflow: SanitizeWorkflow(c.Workflow),
		Ref:      SanitizeValue(c.Ref),
		APIBase:  SanitizeValue(c.APIBase),
	}
}

// Missing flags the required fields that are absent. Token, owner and repo
// have no defaults; workflow and ref do.
type Missing struct {
	Token bool `json:"token"`
	Owner bool `json:"owner"`
	Repo  bool `json:"repo"`
}

func (m Missing) Any() bool {
	return m.Token || m.Owner || m.Repo
}

func (c Config) Missing() Missing {
	return Missing{
		Token: c.Token == "",
		Owner: c.Owner == "",
		Repo:  c.Repo == "",
	}
}

// Echo is the non-secret slice of the config included in failure envelopes so
// operators can see what was actually dispatched against.
type Echo struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	Workflow string `json:"workflow"`
	Ref      string `json:"ref"`
}

func (c Config) Echo() Echo {
	return Echo{Owner: c.Owner, Repo: c.Repo, Workflow: c.Workflow, Ref: c.Ref}
}
