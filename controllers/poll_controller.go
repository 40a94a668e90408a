package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sportsmockery/smgo/middleware"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/utils"
)

// PollController serves reader polls. The vote table is the source of
// truth; option tallies are recomputed from it on every mutation so the
// returned poll is always the authoritative state.
type PollController struct {
	db *gorm.DB
}

// NewPollController creates a new PollController instance.
func NewPollController(db *gorm.DB) *PollController {
	return &PollController{db: db}
}

// GetPoll returns a poll with tallies and, for authenticated callers, the
// option they picked.
func (p *PollController) GetPoll(ctx *gin.Context) {
	poll, ok := p.loadPoll(ctx)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, poll)
}

type voteRequest struct {
	OptionID uint `json:"option_id" binding:"required"`
}

// Vote records or overwrites the caller's ballot and returns the updated
// poll. A second vote replaces the first; clients never keep a local tally.
func (p *PollController) Vote(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	pollID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid poll id")
		return
	}

	var req voteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var option models.PollOption
	if err := p.db.Where("id = ? AND poll_id = ?", req.OptionID, pollID).First(&option).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusBadRequest, "option does not belong to poll")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load option")
		return
	}

	vote := models.PollVote{PollID: uint(pollID), UserID: userID, OptionID: req.OptionID}
	if err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "poll_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"option_id", "updated_at"}),
	}).Create(&vote).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to record vote")
		return
	}

	if err := p.recountOptions(uint(pollID)); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to tally votes")
		return
	}

	poll, ok := p.loadPoll(ctx)
	if !ok {
		return
	}
	utils.JSON(ctx, http.StatusOK, poll)
}

func (p *PollController) loadPoll(ctx *gin.Context) (*models.Poll, bool) {
	pollID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid poll id")
		return nil, false
	}

	var poll models.Poll
	if err := p.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	}).First(&poll, pollID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "poll not found")
			return nil, false
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load poll")
		return nil, false
	}

	for _, opt := range poll.Options {
		poll.TotalVotes += opt.Votes
	}

	if userID, ok := middleware.UserID(ctx); ok {
		var vote models.PollVote
		if err := p.db.Where("poll_id = ? AND user_id = ?", poll.ID, userID).First(&vote).Error; err == nil {
			optionID := vote.OptionID
			poll.UserOptionID = &optionID
		}
	}
	return &poll, true
}

func (p *PollController) recountOptions(pollID uint) error {
	return p.db.Exec(`UPDATE poll_options po
		SET votes = (SELECT COUNT(*) FROM poll_votes pv WHERE pv.option_id = po.id)
		WHERE po.poll_id = ?`, pollID).Error
}
