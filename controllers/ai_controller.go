package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportsmockery/smgo/llm"
	"github.com/sportsmockery/smgo/utils"
)

// AIController fronts the hosted model behind the Ask AI box. One question,
// one complete JSON answer; no streaming.
type AIController struct {
	llm *llm.Client
}

// NewAIController creates a new AIController instance. llm may be nil when
// no model is configured.
func NewAIController(client *llm.Client) *AIController {
	return &AIController{llm: client}
}

type askRequest struct {
	Query string `json:"query" binding:"required"`
}

// Ask answers a reader question.
func (a *AIController) Ask(ctx *gin.Context) {
	if a.llm == nil {
		utils.Fail(ctx, http.StatusServiceUnavailable, "ask AI is not available")
		return
	}

	var req askRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		utils.Fail(ctx, http.StatusBadRequest, "query cannot be empty")
		return
	}

	answer, err := a.llm.Answer(ctx.Request.Context(), query)
	if err != nil {
		utils.Sugar.Errorf("ask-ai failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "assistant is unavailable, try again later")
		return
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"answer": answer})
}
