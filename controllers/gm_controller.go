package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/llm"
	"github.com/sportsmockery/smgo/middleware"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/sportsdata"
	"github.com/sportsmockery/smgo/utils"
)

// GMController implements the trade simulator: rosters and cap tables from
// the static data files, LLM-backed trade grading, saved sessions, and a
// leaderboard over graded trades.
type GMController struct {
	db    *gorm.DB
	store *sportsdata.Store
	llm   *llm.Client
}

// NewGMController creates a new GMController instance. llm may be nil; the
// heuristic grader takes over in that case.
func NewGMController(db *gorm.DB, store *sportsdata.Store, client *llm.Client) *GMController {
	return &GMController{db: db, store: store, llm: client}
}

func (g *GMController) gmData(ctx *gin.Context) (*sportsdata.GMData, bool) {
	team := ctx.Param("team")
	if !config.IsTeamSlug(team) {
		utils.Fail(ctx, http.StatusNotFound, "unknown team")
		return nil, false
	}
	data, err := g.store.GM(team)
	if err != nil {
		utils.Sugar.Errorf("gm data missing for %s: %v", team, err)
		utils.Fail(ctx, http.StatusNotFound, "gm data not available")
		return nil, false
	}
	return data, true
}

// Roster returns the user team's tradeable roster.
func (g *GMController) Roster(ctx *gin.Context) {
	data, ok := g.gmData(ctx)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"season": data.Season, "players": data.Players})
}

// Opponents returns the trade partners and their assets.
func (g *GMController) Opponents(ctx *gin.Context) {
	data, ok := g.gmData(ctx)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"opponents": data.Opponents})
}

// Picks returns the user team's owned draft picks.
func (g *GMController) Picks(ctx *gin.Context) {
	data, ok := g.gmData(ctx)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"picks": data.Picks})
}

// Cap returns the salary-cap snapshot.
func (g *GMController) Cap(ctx *gin.Context) {
	data, ok := g.gmData(ctx)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, gin.H{
		"season":    data.Season,
		"cap_space": data.CapSpace,
		"cap_total": data.CapTotal,
	})
}

type gradeTradeRequest struct {
	Team      string          `json:"team" binding:"required"`
	SessionID string          `json:"session_id"`
	Trade     json.RawMessage `json:"trade" binding:"required"`
}

// GradeTrade asks the model (or the heuristic fallback) for a 0-100 grade of
// a proposed trade and records the result for the leaderboard.
func (g *GMController) GradeTrade(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req gradeTradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	team, ok := config.TeamBySlug(req.Team)
	if !ok {
		utils.Fail(ctx, http.StatusBadRequest, "unknown team")
		return
	}

	var grade *llm.TradeGrade
	if g.llm != nil {
		var err error
		grade, err = g.llm.GradeTrade(ctx.Request.Context(), team.Name, string(req.Trade))
		if err != nil {
			utils.Sugar.Warnf("llm trade grading failed, falling back: %v", err)
		}
	}
	if grade == nil {
		grade = gradeTradeHeuristic(req.Trade)
	}

	record := models.GMTrade{
		UserID:    userID,
		SessionID: req.SessionID,
		Team:      req.Team,
		Payload:   string(req.Trade),
		Grade:     grade.Grade,
		Verdict:   grade.Verdict,
		Analysis:  grade.Analysis,
	}
	if err := g.db.Create(&record).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to record trade")
		return
	}

	utils.JSON(ctx, http.StatusOK, gin.H{
		"grade":    grade.Grade,
		"verdict":  grade.Verdict,
		"analysis": grade.Analysis,
	})
}

type leaderboardEntry struct {
	Rank        int    `json:"rank"`
	DisplayName string `json:"display_name"`
	Team        string `json:"team"`
	BestGrade   int    `json:"best_grade"`
	Trades      int64  `json:"trades"`
}

// Leaderboard ranks users by their best graded trade, optionally per team.
func (g *GMController) Leaderboard(ctx *gin.Context) {
	q := g.db.Model(&models.GMTrade{}).
		Select("gm_trades.user_id, users.display_name, gm_trades.team, MAX(gm_trades.grade) AS best_grade, COUNT(*) AS trades").
		Joins("JOIN users ON users.id = gm_trades.user_id").
		Group("gm_trades.user_id, users.display_name, gm_trades.team").
		Order("best_grade DESC").
		Limit(50)
	if team := ctx.Query("team"); team != "" {
		q = q.Where("gm_trades.team = ?", team)
	}

	var rows []struct {
		UserID      uint
		DisplayName string
		Team        string
		BestGrade   int
		Trades      int64
	}
	if err := q.Scan(&rows).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}

	entries := make([]leaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, leaderboardEntry{
			Rank:        i + 1,
			DisplayName: r.DisplayName,
			Team:        r.Team,
			BestGrade:   r.BestGrade,
			Trades:      r.Trades,
		})
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"entries": entries})
}

type saveSessionRequest struct {
	ID       string          `json:"id"`
	Team     string          `json:"team" binding:"required"`
	CapSpace int64           `json:"cap_space"`
	Roster   json.RawMessage `json:"roster"`
	Picks    json.RawMessage `json:"picks"`
}

// SaveSession creates or updates the caller's saved simulator state. The
// roster and picks documents are stored opaquely and returned as sent.
func (g *GMController) SaveSession(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req saveSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !config.IsTeamSlug(req.Team) {
		utils.Fail(ctx, http.StatusBadRequest, "unknown team")
		return
	}

	session := models.GMSession{
		ID:       req.ID,
		UserID:   userID,
		Team:     req.Team,
		CapSpace: req.CapSpace,
		Roster:   string(req.Roster),
		Picks:    string(req.Picks),
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
		if err := g.db.Create(&session).Error; err != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to save session")
			return
		}
	} else {
		res := g.db.Model(&models.GMSession{}).
			Where("id = ? AND user_id = ?", session.ID, userID).
			Updates(map[string]interface{}{
				"team": session.Team, "cap_space": session.CapSpace,
				"roster": session.Roster, "picks": session.Picks,
			})
		if res.Error != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to save session")
			return
		}
		if res.RowsAffected == 0 {
			utils.Fail(ctx, http.StatusNotFound, "session not found")
			return
		}
	}

	g.getSessionByID(ctx, session.ID, userID)
}

// ListSessions returns the caller's saved sessions, newest first.
func (g *GMController) ListSessions(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var sessions []models.GMSession
	if err := g.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&sessions).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []models.GMSession{}
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"sessions": sessions})
}

// GetSession returns one saved session owned by the caller.
func (g *GMController) GetSession(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}
	g.getSessionByID(ctx, ctx.Param("id"), userID)
}

func (g *GMController) getSessionByID(ctx *gin.Context, id string, userID uint) {
	var session models.GMSession
	if err := g.db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "session not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load session")
		return
	}

	utils.JSON(ctx, http.StatusOK, gin.H{
		"id":        session.ID,
		"team":      session.Team,
		"cap_space": session.CapSpace,
		"roster":    json.RawMessage(orEmptyJSON(session.Roster)),
		"picks":     json.RawMessage(orEmptyJSON(session.Picks)),
		"created_at": session.CreatedAt,
		"updated_at": session.UpdatedAt,
	})
}

func orEmptyJSON(s string) string {
	if s == "" {
		return "null"
	}
	return s
}

// heuristicTrade is the best-effort shape the fallback grader understands.
// Unknown documents grade out as an even 50.
type heuristicTrade struct {
	SentPlayers     []sportsdata.GMPlayer    `json:"sent_players"`
	ReceivedPlayers []sportsdata.GMPlayer    `json:"received_players"`
	SentPicks       []sportsdata.GMDraftPick `json:"sent_picks"`
	ReceivedPicks   []sportsdata.GMDraftPick `json:"received_picks"`
}

func gradeTradeHeuristic(raw json.RawMessage) *llm.TradeGrade {
	var trade heuristicTrade
	_ = json.Unmarshal(raw, &trade)

	value := func(players []sportsdata.GMPlayer, picks []sportsdata.GMDraftPick) int {
		v := 0
		for _, p := range players {
			v += p.Overall
		}
		for _, p := range picks {
			// Early picks are worth roughly a starter, late picks a flyer.
			v += 80 - (p.Round-1)*12
		}
		return v
	}

	diff := value(trade.ReceivedPlayers, trade.ReceivedPicks) - value(trade.SentPlayers, trade.SentPicks)
	grade := 50 + diff/2
	if grade < 0 {
		grade = 0
	}
	if grade > 100 {
		grade = 100
	}

	verdict := "Even"
	switch {
	case grade >= 85:
		verdict = "Fleece"
	case grade >= 70:
		verdict = "Win"
	case grade >= 55:
		verdict = "Fair"
	case grade >= 40:
		verdict = "Risky"
	default:
		verdict = "Overpay"
	}

	return &llm.TradeGrade{
		Grade:    grade,
		Verdict:  verdict,
		Analysis: "Graded on roster value exchanged; the front office model is offline.",
	}
}
