// Package endpoints maps logical operations to upstream request URLs.
package endpoints

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JerelRocktaschel/jumpshot/internal/season"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

const (
	DefaultDataV2BaseURL    = "https://data.nba.net/data/5s/prod/v2/"
	DefaultDataV1BaseURL    = "https://data.nba.net/prod/v1/"
	DefaultDataNBABaseURL   = "https://data.nba.com/prod/v1/"
	DefaultStatsBaseURL     = "https://stats.nba.com/stats/"
	DefaultTeamLogoBaseURL  = "https://a.espncdn.com/i/teamlogos/nba/500/"
	DefaultHeadshotsBaseURL = "https://ak-static.cms.nba.com/wp-content/uploads/headshots/nba/latest/"

	leagueID = "00"
)

// ResolvedRequest is the URL an operation resolves to.
type ResolvedRequest struct {
	BaseURL string
	Path    string
	Query   string
}

// URL joins base, path and query.
func (r ResolvedRequest) URL() string {
	if r.Query == "" {
		return r.BaseURL + r.Path
	}
	return r.BaseURL + r.Path + "?" + r.Query
}

// Catalog holds the base URL of each upstream host. The zero value is not usable; start from
// DefaultCatalog and override hosts as needed.
type Catalog struct {
	DataV2    string
	DataV1    string
	DataNBA   string
	Stats     string
	TeamLogos string
	Headshots string
}

// DefaultCatalog points at the production hosts.
func DefaultCatalog() Catalog {
	return Catalog{
		DataV2:    DefaultDataV2BaseURL,
		DataV1:    DefaultDataV1BaseURL,
		DataNBA:   DefaultDataNBABaseURL,
		Stats:     DefaultStatsBaseURL,
		TeamLogos: DefaultTeamLogoBaseURL,
		Headshots: DefaultHeadshotsBaseURL,
	}
}

// WithDefaults fills any empty base URL from DefaultCatalog and ensures each ends in a slash.
func (c Catalog) WithDefaults() Catalog {
	d := DefaultCatalog()
	return Catalog{
		DataV2:    normalizeBase(c.DataV2, d.DataV2),
		DataV1:    normalizeBase(c.DataV1, d.DataV1),
		DataNBA:   normalizeBase(c.DataNBA, d.DataNBA),
		Stats:     normalizeBase(c.Stats, d.Stats),
		TeamLogos: normalizeBase(c.TeamLogos, d.TeamLogos),
		Headshots: normalizeBase(c.Headshots, d.Headshots),
	}
}

// Resolve resolves op against the production hosts.
func Resolve(op Operation) ResolvedRequest {
	return DefaultCatalog().Resolve(op)
}

// Resolve maps op to a request. It is pure: equal operations always resolve to equal requests.
func (c Catalog) Resolve(op Operation) ResolvedRequest {
	switch op.Kind {
	case KindTeamList:
		return ResolvedRequest{BaseURL: c.DataV2, Path: op.Season + "/teams.json"}
	case KindPlayerList:
		return ResolvedRequest{BaseURL: c.DataV2, Path: op.Season + "/players.json"}
	case KindTeamImage:
		return ResolvedRequest{BaseURL: c.TeamLogos, Path: LogoAbbreviation(op.TeamAbbreviation) + ".png"}
	case KindPlayerImage:
		return ResolvedRequest{BaseURL: c.Headshots, Path: op.ImageSize.String() + "/" + op.PlayerID + ".png"}
	case KindDailySchedule:
		return ResolvedRequest{
			BaseURL: c.Stats,
			Path:    "internationalbroadcasterschedule",
			Query: "LeagueID=" + leagueID +
				"&Season=" + op.Season +
				"&RegionID=1" +
				"&Date=" + timeutil.Format(op.Date, timeutil.ScheduleDateLayout) +
				"&EST=Y",
		}
	case KindStandings:
		return ResolvedRequest{BaseURL: c.DataV2, Path: "current/standings_all.json"}
	case KindTeamLeaders:
		return ResolvedRequest{BaseURL: c.teamBase(op.Season), Path: op.TeamID + "/leaders.json"}
	case KindTeamSchedule:
		return ResolvedRequest{BaseURL: c.teamBase(op.Season), Path: op.TeamID + "/schedule.json"}
	case KindCoaches:
		return ResolvedRequest{BaseURL: c.DataV1, Path: op.Season + "/coaches.json"}
	case KindTeamStatRankings:
		return ResolvedRequest{BaseURL: c.DataNBA, Path: op.Season + "/team_stats_rankings.json"}
	case KindPlayerStatsSummary:
		return ResolvedRequest{BaseURL: c.DataNBA, Path: op.Season + "/players/" + op.PlayerID + "_profile.json"}
	case KindLeadTracker:
		return ResolvedRequest{
			BaseURL: c.DataV1,
			Path:    fmt.Sprintf("%s/%s_lead_tracker_%d.json", timeutil.Format(op.Date, timeutil.PathDateLayout), op.GameID, op.Period),
		}
	case KindBoxscore:
		return ResolvedRequest{
			BaseURL: c.DataV1,
			Path:    timeutil.Format(op.Date, timeutil.PathDateLayout) + "/" + op.GameID + "_boxscore.json",
		}
	case KindLeagueLeaders:
		return ResolvedRequest{
			BaseURL: c.Stats,
			Path:    "leagueleaders",
			Query: "LeagueID=" + leagueID +
				"&PerMode=" + url.QueryEscape(string(op.PerMode)) +
				"&Scope=S" +
				"&Season=" + statsSeason(op.Season) +
				"&SeasonType=" + url.QueryEscape(string(op.SeasonType)) +
				"&StatCategory=" + url.QueryEscape(op.StatCategory),
		}
	default:
		return ResolvedRequest{}
	}
}

func (c Catalog) teamBase(season string) string {
	return c.DataNBA + season + "/teams/"
}

func statsSeason(raw string) string {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return season.StatsLabel(year)
}

func normalizeBase(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw
}
