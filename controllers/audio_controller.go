package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/utils"
)

// AudioController serves the listen-to-articles playlist: audio-flagged
// posts addressed by slug, plus a "next in playlist" lookup.
type AudioController struct {
	db *gorm.DB
}

// NewAudioController creates a new AudioController instance.
func NewAudioController(db *gorm.DB) *AudioController {
	return &AudioController{db: db}
}

// GetBySlug serves GET /api/audio/:slug. The literal slugs "next" and
// "first" are playlist lookups (GET /api/audio/next?after=<slug> and
// GET /api/audio/first?team=<slug>); everything else resolves an audio
// article directly.
func (a *AudioController) GetBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")
	switch slug {
	case "next":
		a.next(ctx)
		return
	case "first":
		a.first(ctx)
		return
	}

	var post models.Post
	err := a.db.Preload("Author").Preload("Category").
		Where("slug = ? AND has_audio = ?", slug, true).
		First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "audio article not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load audio article")
		return
	}
	utils.JSON(ctx, http.StatusOK, post)
}

// next returns the audio article published immediately before the one the
// listener just finished, or 404 at the end of the playlist.
func (a *AudioController) next(ctx *gin.Context) {
	after := ctx.Query("after")
	if after == "" {
		utils.Fail(ctx, http.StatusBadRequest, "missing after parameter")
		return
	}

	var current models.Post
	if err := a.db.Select("id, published_at").
		Where("slug = ? AND has_audio = ?", after, true).
		First(&current).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "audio article not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load audio article")
		return
	}

	var next models.Post
	err := a.db.Preload("Author").Preload("Category").
		Where("has_audio = ? AND published_at < ?", true, current.PublishedAt).
		Order("published_at DESC").
		First(&next).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "end of playlist")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load next audio article")
		return
	}
	utils.JSON(ctx, http.StatusOK, next)
}

// first returns the newest audio article, optionally scoped to one team's
// category, or 404 when nothing in scope carries audio.
func (a *AudioController) first(ctx *gin.Context) {
	team := ctx.Query("team")
	if team != "" && !config.IsTeamSlug(team) {
		utils.Fail(ctx, http.StatusNotFound, "unknown team")
		return
	}

	q := a.db.Preload("Author").Preload("Category").
		Where("posts.has_audio = ?", true).
		Order("posts.published_at DESC")
	if team != "" {
		q = q.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", team)
	}

	var post models.Post
	if err := q.First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "no audio articles")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load audio article")
		return
	}
	utils.JSON(ctx, http.StatusOK, post)
}
