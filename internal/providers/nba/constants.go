package nba

import "time"

const (
	defaultHTTPTimeout = 10 * time.Second
	// stats.nba.com rejects requests that do not look like they came from nba.com.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	defaultReferer   = "https://www.nba.com/"
	defaultOrigin    = "https://www.nba.com"

	// real franchises share this id prefix; rankings also carry league-average rows.
	franchiseIDPrefix = "1610612"
)
