package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

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

// DraftController runs the interactive mock draft: the static draft order
// and prospect pool drive the board, CPU teams auto-pick best available,
// and the user picks whenever their team is on the clock.
type DraftController struct {
	db    *gorm.DB
	store *sportsdata.Store
	llm   *llm.Client
}

// NewDraftController creates a new DraftController instance. llm may be nil;
// grading then skips the written summary.
func NewDraftController(db *gorm.DB, store *sportsdata.Store, client *llm.Client) *DraftController {
	return &DraftController{db: db, store: store, llm: client}
}

type startDraftRequest struct {
	Team   string `json:"team" binding:"required"`
	Rounds int    `json:"rounds"`
}

// Start creates a draft, runs CPU picks up to the user's first slot, and
// returns the full board.
func (d *DraftController) Start(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req startDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !config.IsTeamSlug(req.Team) {
		utils.Fail(ctx, http.StatusBadRequest, "unknown team")
		return
	}

	order, err := d.store.DraftOrder()
	if err != nil {
		utils.Sugar.Errorf("draft order unavailable: %v", err)
		utils.Fail(ctx, http.StatusServiceUnavailable, "draft data not available")
		return
	}
	if !containsSlug(order.Order, req.Team) {
		utils.Fail(ctx, http.StatusBadRequest, "team has no picks in this draft")
		return
	}

	rounds := req.Rounds
	if rounds <= 0 || rounds > order.Rounds {
		rounds = order.Rounds
	}

	draft := models.MockDraft{
		ID:     uuid.NewString(),
		UserID: userID,
		Team:   req.Team,
		Status: models.DraftInProgress,
		Rounds: rounds,
	}
	perRound := len(order.Order)
	for r := 1; r <= rounds; r++ {
		for i, slug := range order.Order {
			draft.Picks = append(draft.Picks, models.MockDraftPick{
				Round:    r,
				Overall:  (r-1)*perRound + i + 1,
				TeamSlug: slug,
				IsUser:   slug == req.Team,
			})
		}
	}

	prospects, err := d.store.Prospects()
	if err != nil {
		utils.Sugar.Errorf("prospect pool unavailable: %v", err)
		utils.Fail(ctx, http.StatusServiceUnavailable, "draft data not available")
		return
	}
	d.advance(&draft, prospects)

	if err := d.db.Create(&draft).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to create draft")
		return
	}
	utils.JSON(ctx, http.StatusCreated, draft)
}

// Get returns the draft board with all picks in overall order.
func (d *DraftController) Get(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}
	draft, ok := d.loadDraft(ctx, ctx.Param("id"), userID)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, draft)
}

type draftPickRequest struct {
	ProspectID string `json:"prospect_id" binding:"required"`
}

// Pick makes the user's selection on the current slot, then runs CPU picks
// until the user is back on the clock or the draft completes.
func (d *DraftController) Pick(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req draftPickRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	draft, ok := d.loadDraft(ctx, ctx.Param("id"), userID)
	if !ok {
		return
	}
	if draft.Status != models.DraftInProgress {
		utils.Fail(ctx, http.StatusConflict, "draft is already completed")
		return
	}

	current := currentPick(draft)
	if current == nil || !current.IsUser {
		utils.Fail(ctx, http.StatusConflict, "your team is not on the clock")
		return
	}

	prospects, err := d.store.Prospects()
	if err != nil {
		utils.Sugar.Errorf("prospect pool unavailable: %v", err)
		utils.Fail(ctx, http.StatusServiceUnavailable, "draft data not available")
		return
	}
	if !prospectExists(prospects, req.ProspectID) {
		utils.Fail(ctx, http.StatusBadRequest, "unknown prospect")
		return
	}
	if prospectTaken(draft, req.ProspectID) {
		utils.Fail(ctx, http.StatusConflict, "prospect already drafted")
		return
	}

	current.ProspectID = req.ProspectID
	current.IsCurrent = false
	d.advance(draft, prospects)

	if err := d.saveBoard(draft); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to save pick")
		return
	}
	utils.JSON(ctx, http.StatusOK, draft)
}

// Prospects returns the draft-eligible pool ordered by rank.
func (d *DraftController) Prospects(ctx *gin.Context) {
	prospects, err := d.store.Prospects()
	if err != nil {
		utils.Sugar.Errorf("prospect pool unavailable: %v", err)
		utils.Fail(ctx, http.StatusServiceUnavailable, "draft data not available")
		return
	}
	// Copy before sorting; the store hands out its cached slice.
	ranked := append([]sportsdata.Prospect(nil), prospects...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
	utils.JSON(ctx, http.StatusOK, gin.H{"prospects": ranked})
}

// Eligibility reports which covered teams hold picks in the current draft.
func (d *DraftController) Eligibility(ctx *gin.Context) {
	order, err := d.store.DraftOrder()
	if err != nil {
		utils.Sugar.Errorf("draft order unavailable: %v", err)
		utils.Fail(ctx, http.StatusServiceUnavailable, "draft data not available")
		return
	}

	teams := make([]string, 0, len(config.Teams))
	for _, t := range config.Teams {
		if containsSlug(order.Order, t.Slug) {
			teams = append(teams, t.Slug)
		}
	}
	utils.JSON(ctx, http.StatusOK, gin.H{
		"year":   order.Year,
		"rounds": order.Rounds,
		"teams":  teams,
	})
}

// Grade scores a completed draft from prospect rank against draft slot and
// stores the result. The written summary comes from the model when one is
// configured.
func (d *DraftController) Grade(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}
	draft, ok := d.loadDraft(ctx, ctx.Param("id"), userID)
	if !ok {
		return
	}
	if draft.Status != models.DraftCompleted {
		utils.Fail(ctx, http.StatusConflict, "draft is not finished")
		return
	}

	prospects, err := d.store.Prospects()
	if err != nil {
		utils.Sugar.Errorf("prospect pool unavailable: %v", err)
		utils.Fail(ctx, http.StatusServiceUnavailable, "draft data not available")
		return
	}

	grade, letter := gradeDraft(draft, prospects)
	draft.Grade = grade
	draft.GradeLetter = letter
	draft.Summary = d.summarize(ctx, draft, prospects)

	if err := d.db.Model(&models.MockDraft{}).Where("id = ?", draft.ID).
		Updates(map[string]interface{}{
			"grade": draft.Grade, "grade_letter": draft.GradeLetter, "summary": draft.Summary,
		}).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to save grade")
		return
	}

	utils.JSON(ctx, http.StatusOK, gin.H{
		"grade":        draft.Grade,
		"grade_letter": draft.GradeLetter,
		"summary":      draft.Summary,
	})
}

func (d *DraftController) loadDraft(ctx *gin.Context, id string, userID uint) (*models.MockDraft, bool) {
	var draft models.MockDraft
	err := d.db.Preload("Picks", func(db *gorm.DB) *gorm.DB {
		return db.Order("overall ASC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&draft).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "draft not found")
			return nil, false
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load draft")
		return nil, false
	}
	return &draft, true
}

// advance runs CPU selections from the first unfilled slot until the user's
// team is on the clock or the board is exhausted, then marks the new current
// pick or completes the draft. A drained prospect pool ends the draft early;
// the remaining slots pass unfilled so the board can never strand the user
// on the clock with nothing left to select.
func (d *DraftController) advance(draft *models.MockDraft, prospects []sportsdata.Prospect) {
	taken := takenSet(draft)
	for i := range draft.Picks {
		p := &draft.Picks[i]
		if p.ProspectID != "" {
			continue
		}
		next := bestAvailable(prospects, taken)
		if next == "" {
			break
		}
		if p.IsUser {
			p.IsCurrent = true
			draft.CurrentPick = p.Overall
			return
		}
		p.ProspectID = next
		taken[next] = true
	}
	draft.Status = models.DraftCompleted
	draft.CurrentPick = 0
}

func (d *DraftController) saveBoard(draft *models.MockDraft) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MockDraft{}).Where("id = ?", draft.ID).
			Updates(map[string]interface{}{
				"status": draft.Status, "current_pick": draft.CurrentPick,
			}).Error; err != nil {
			return err
		}
		for i := range draft.Picks {
			p := draft.Picks[i]
			if err := tx.Model(&models.MockDraftPick{}).Where("id = ?", p.ID).
				Updates(map[string]interface{}{
					"prospect_id": p.ProspectID, "is_current": p.IsCurrent,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *DraftController) summarize(ctx *gin.Context, draft *models.MockDraft, prospects []sportsdata.Prospect) string {
	if d.llm == nil {
		return ""
	}

	byID := make(map[string]sportsdata.Prospect, len(prospects))
	for _, p := range prospects {
		byID[p.ID] = p
	}
	var lines []string
	for _, pick := range draft.Picks {
		if !pick.IsUser || pick.ProspectID == "" {
			continue
		}
		pr := byID[pick.ProspectID]
		lines = append(lines, fmt.Sprintf("Pick %d (round %d): %s, %s, %s (ranked #%d)",
			pick.Overall, pick.Round, pr.Name, pr.Position, pr.College, pr.Rank))
	}

	question := fmt.Sprintf("Write a 2-3 sentence draft recap for the %s after this mock draft, graded %s:\n%s",
		draft.Team, draft.GradeLetter, strings.Join(lines, "\n"))
	summary, err := d.llm.Answer(ctx.Request.Context(), question)
	if err != nil {
		utils.Sugar.Warnf("draft summary failed: %v", err)
		return ""
	}
	return summary
}

// gradeDraft averages rank-versus-slot value over the user's picks. Landing a
// prospect ranked well above the slot pulls the grade up.
func gradeDraft(draft *models.MockDraft, prospects []sportsdata.Prospect) (int, string) {
	rankByID := make(map[string]int, len(prospects))
	for _, p := range prospects {
		rankByID[p.ID] = p.Rank
	}

	total, picks := 0, 0
	for _, p := range draft.Picks {
		if !p.IsUser || p.ProspectID == "" {
			continue
		}
		rank, ok := rankByID[p.ProspectID]
		if !ok {
			continue
		}
		total += p.Overall - rank
		picks++
	}

	grade := 75
	if picks > 0 {
		grade = 75 + total*2/picks
	}
	if grade < 0 {
		grade = 0
	}
	if grade > 100 {
		grade = 100
	}

	letter := "F"
	switch {
	case grade >= 90:
		letter = "A"
	case grade >= 80:
		letter = "B"
	case grade >= 70:
		letter = "C"
	case grade >= 60:
		letter = "D"
	}
	return grade, letter
}

func currentPick(draft *models.MockDraft) *models.MockDraftPick {
	for i := range draft.Picks {
		if draft.Picks[i].IsCurrent {
			return &draft.Picks[i]
		}
	}
	return nil
}

func takenSet(draft *models.MockDraft) map[string]bool {
	taken := make(map[string]bool)
	for _, p := range draft.Picks {
		if p.ProspectID != "" {
			taken[p.ProspectID] = true
		}
	}
	return taken
}

func prospectTaken(draft *models.MockDraft, id string) bool {
	return takenSet(draft)[id]
}

func prospectExists(prospects []sportsdata.Prospect, id string) bool {
	for _, p := range prospects {
		if p.ID == id {
			return true
		}
	}
	return false
}

// bestAvailable returns the lowest-ranked untaken prospect ID, or empty when
// the pool is exhausted.
func bestAvailable(prospects []sportsdata.Prospect, taken map[string]bool) string {
	bestID, bestRank := "", 0
	for _, p := range prospects {
		if taken[p.ID] {
			continue
		}
		if bestID == "" || p.Rank < bestRank {
			bestID, bestRank = p.ID, p.Rank
		}
	}
	return bestID
}

func containsSlug(order []string, slug string) bool {
	for _, s := range order {
		if s == slug {
			return true
		}
	}
	return false
}
