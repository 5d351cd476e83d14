package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func smells(m dsl.Matcher) {
	// Two consecutive guards with the same return are one condition.
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	m.Match(`if $c1 { continue }; if $c2 { continue }`).
		Report(`two consecutive continues; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { continue }`)

	// Outbound requests must carry a context for the per-call timeout.
	m.Match(`http.NewRequest($method, $url, $body)`).
		Report(`use http.NewRequestWithContext so the call honors cancellation`)

	// Credentials are injected at construction, never read ad hoc.
	m.Match(`os.Getenv("RAPID_APIKEY")`, `os.Getenv("GROQ_API_KEY")`).
		Where(!m.File().Name.Matches(`config`)).
		Report(`read credentials through internal/infra/config, not ambient env vars`)
}
