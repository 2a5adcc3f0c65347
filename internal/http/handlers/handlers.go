package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/logging"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/season"
	"github.com/JerelRocktaschel/jumpshot/internal/timeutil"
)

type nowFunc func() time.Time

// Handler exposes provider operations as JSON routes.
type Handler struct {
	provider providers.DataProvider
	seasons  *season.Resolver
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler. A nil resolver uses the default season cutoff.
func NewHandler(provider providers.DataProvider, seasons *season.Resolver, logger *slog.Logger) *Handler {
	if seasons == nil {
		seasons = season.NewResolver(season.DefaultCutoff)
	}
	return &Handler{
		provider: provider,
		seasons:  seasons,
		logger:   logger,
		now:      time.Now,
	}
}

// listResponse wraps every collection route.
type listResponse[T any] struct {
	Season string `json:"season,omitempty"`
	Date   string `json:"date,omitempty"`
	Count  int    `json:"count"`
	Data   []T    `json:"data"`
}

func newList[T any](season string, items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Season: season, Count: len(items), Data: items}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, codeShuttingDown, "shutting down", h.logger)
		return
	}
	resp := map[string]string{"status": "ok", "season": h.seasons.Current()}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Teams lists franchises for a season.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	s := h.season(r)
	out, err := h.provider.FetchTeams(r.Context(), s)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "teams", len(out))
	writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
}

func (h *Handler) TeamLeaders(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := numericPathValue(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.provider.FetchTeamLeaders(r.Context(), h.season(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

func (h *Handler) TeamSchedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := numericPathValue(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s := h.season(r)
	out, err := h.provider.FetchTeamSchedule(r.Context(), s, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "team schedule", len(out))
	writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
}

// TeamLogo streams the team's logo image.
func (h *Handler) TeamLogo(w nethttp.ResponseWriter, r *nethttp.Request) {
	abbr, err := abbreviationPathValue(r, "abbr")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	img, err := h.provider.FetchTeamImage(r.Context(), abbr)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeImage(w, img, h.logger)
}

func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	s := h.season(r)
	out, err := h.provider.FetchPlayers(r.Context(), s)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "players", len(out))
	writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
}

func (h *Handler) PlayerSummary(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := numericPathValue(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.provider.FetchPlayerStatsSummary(r.Context(), h.season(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// PlayerHeadshot streams a player headshot at the requested size.
func (h *Handler) PlayerHeadshot(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := numericPathValue(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	size, err := sizeParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	img, err := h.provider.FetchPlayerImage(r.Context(), id, size)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeImage(w, img, h.logger)
}

// Schedule lists games on one date, today in Eastern time when date is omitted.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	day, err := h.dateParam(r, false)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s := h.season(r)
	out, err := h.provider.FetchDailySchedule(r.Context(), s, day)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "schedule", len(out))
	resp := newList(s, out)
	resp.Date = timeutil.FormatDate(day)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	out, err := h.provider.FetchStandings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "standings", len(out))
	writeJSON(w, nethttp.StatusOK, newList("", out), h.logger)
}

func (h *Handler) Coaches(w nethttp.ResponseWriter, r *nethttp.Request) {
	s := h.season(r)
	out, err := h.provider.FetchCoaches(r.Context(), s)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "coaches", len(out))
	writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
}

func (h *Handler) Rankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	s := h.season(r)
	out, err := h.provider.FetchTeamStatRankings(r.Context(), s)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "rankings", len(out))
	writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
}

// Leaders serves league leaders. Totals mode returns integer totals rows, every other mode
// returns averages.
func (h *Handler) Leaders(w nethttp.ResponseWriter, r *nethttp.Request) {
	mode, err := modeParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	seasonType, err := seasonTypeParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	category, err := categoryParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s := h.season(r)

	if mode.IsTotals() {
		out, err := h.provider.FetchLeagueTotals(r.Context(), s, seasonType, category)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.served(r, "league totals", len(out))
		writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
		return
	}
	out, err := h.provider.FetchLeagueAverages(r.Context(), s, mode, seasonType, category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.served(r, "league averages", len(out))
	writeJSON(w, nethttp.StatusOK, newList(s, out), h.logger)
}

func (h *Handler) Boxscore(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := numericPathValue(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	day, err := h.dateParam(r, true)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.provider.FetchBoxscore(r.Context(), day, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

func (h *Handler) LeadTracker(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := numericPathValue(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	day, err := h.dateParam(r, true)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	period, err := periodParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.provider.FetchLeadTracker(r.Context(), day, id, period)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

func (h *Handler) fail(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	status, code := classify(err)
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		level := slog.LevelInfo
		if status >= nethttp.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "request failed",
			slog.Int(logging.FieldStatusCode, status),
			slog.String("code", code),
			slog.Any(logging.FieldError, err),
		)
	}
	writeError(w, r, status, code, err.Error(), h.logger)
}

func (h *Handler) served(r *nethttp.Request, what string, count int) {
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Debug("served "+what, slog.Int(logging.FieldCount, count))
	}
}
