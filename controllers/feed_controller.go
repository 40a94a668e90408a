package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/middleware"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/utils"
)

const (
	feedScanLimit     = 120
	feedHeadlineCount = 10
	feedSectionCount  = 5
	feedTrendingCount = 10
	feedCacheKey      = "cache:feed:v1"
)

// postSummaryColumns keeps article bodies out of list payloads.
const postSummaryColumns = "id, slug, title, excerpt, featured_image, published_at, views, score, has_audio, audio_url, audio_duration, author_id, category_id"

// FeedController assembles the aggregated homepage payload.
type FeedController struct {
	db *gorm.DB
}

// NewFeedController creates a new FeedController instance.
func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{db: db}
}

type feedRequest struct {
	ViewedIDs       []uint   `json:"viewed_ids"`
	TeamPreferences []string `json:"team_preferences"`
}

type feedMeta struct {
	Total         int64 `json:"total"`
	Viewed        int   `json:"viewed"`
	Authenticated bool  `json:"authenticated"`
}

type feedResponse struct {
	Featured     *models.Post             `json:"featured"`
	Headlines    []models.Post            `json:"headlines"`
	TeamSections map[string][]models.Post `json:"team_sections"`
	Trending     []models.Post            `json:"trending"`
	Meta         feedMeta                 `json:"meta"`
}

// GetFeed serves the anonymous homepage feed. The assembled payload is
// cached in Redis because every mobile session starts here.
func (f *FeedController) GetFeed(ctx *gin.Context) {
	_, authenticated := middleware.UserID(ctx)

	if !authenticated {
		if b, ok := utils.CacheGetBytes(feedCacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	resp, err := f.buildFeed(nil, nil, authenticated)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to build feed")
		return
	}

	if !authenticated {
		utils.CacheSetJSON(feedCacheKey, resp, time.Duration(config.Get().FeedCacheTTLSec)*time.Second)
	}
	utils.JSON(ctx, http.StatusOK, resp)
}

// GetPersonalizedFeed serves a tailored feed: already-viewed articles drop
// out and preferred teams surface first in the headlines.
func (f *FeedController) GetPersonalizedFeed(ctx *gin.Context) {
	var req feedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	_, authenticated := middleware.UserID(ctx)
	resp, err := f.buildFeed(req.ViewedIDs, req.TeamPreferences, authenticated)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to build feed")
		return
	}
	utils.JSON(ctx, http.StatusOK, resp)
}

func (f *FeedController) buildFeed(viewedIDs []uint, teamPreferences []string, authenticated bool) (*feedResponse, error) {
	var recent []models.Post
	if err := f.db.Select(postSummaryColumns).
		Preload("Author").Preload("Category").
		Where("published_at <= ?", time.Now()).
		Order("published_at DESC").
		Limit(feedScanLimit).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := f.db.Model(&models.Post{}).Where("published_at <= ?", time.Now()).Count(&total).Error; err != nil {
		return nil, err
	}

	viewed := make(map[uint]bool, len(viewedIDs))
	for _, id := range viewedIDs {
		viewed[id] = true
	}
	preferred := make(map[string]bool, len(teamPreferences))
	for _, slug := range teamPreferences {
		if config.IsTeamSlug(slug) {
			preferred[slug] = true
		}
	}

	resp := &feedResponse{
		Headlines:    []models.Post{},
		TeamSections: map[string][]models.Post{},
		Trending:     []models.Post{},
		Meta:         feedMeta{Total: total, Authenticated: authenticated},
	}

	// Featured: highest editorial score among recent posts; latest post when
	// nothing is flagged. An empty site yields featured = null, which is a
	// valid feed.
	for i := range recent {
		if viewed[recent[i].ID] {
			resp.Meta.Viewed++
			continue
		}
		if resp.Featured == nil || recent[i].Score > resp.Featured.Score {
			p := recent[i]
			resp.Featured = &p
		}
	}

	teamOf := func(p *models.Post) string {
		if p.Category != nil && config.IsTeamSlug(p.Category.Slug) {
			return p.Category.Slug
		}
		return ""
	}

	// Headlines: newest first, preferred teams surfaced to the front.
	var preferredHeads, otherHeads []models.Post
	for i := range recent {
		p := recent[i]
		if viewed[p.ID] || (resp.Featured != nil && p.ID == resp.Featured.ID) {
			continue
		}
		if preferred[teamOf(&p)] {
			preferredHeads = append(preferredHeads, p)
		} else {
			otherHeads = append(otherHeads, p)
		}
	}
	for _, p := range append(preferredHeads, otherHeads...) {
		if len(resp.Headlines) >= feedHeadlineCount {
			break
		}
		resp.Headlines = append(resp.Headlines, p)
	}

	// Team sections, keyed by the fixed team enumeration.
	for _, team := range config.Teams {
		section := []models.Post{}
		for i := range recent {
			p := recent[i]
			if viewed[p.ID] || teamOf(&p) != team.Slug {
				continue
			}
			section = append(section, p)
			if len(section) >= feedSectionCount {
				break
			}
		}
		resp.TeamSections[team.Slug] = section
	}

	// Trending: most viewed inside the trending window.
	windowStart := time.Now().AddDate(0, 0, -config.Get().TrendingWindowDays)
	if err := f.db.Select(postSummaryColumns).
		Preload("Author").Preload("Category").
		Where("published_at >= ?", windowStart).
		Order("views DESC").
		Limit(feedTrendingCount).
		Find(&resp.Trending).Error; err != nil {
		return nil, err
	}

	return resp, nil
}
