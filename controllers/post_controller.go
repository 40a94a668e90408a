package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/utils"
)

// PostController serves single articles, team article lists, search, and
// client-reported view counts.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

type articleResponse struct {
	models.Post
	RelatedPosts []models.Post `json:"related_posts"`
}

// GetPost returns a single post with full content and related articles.
// The path parameter accepts a numeric id or a slug.
func (p *PostController) GetPost(ctx *gin.Context) {
	key := ctx.Param("id")

	if b, ok := utils.CacheGetBytes("cache:post:" + key); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	q := p.db.Preload("Author").Preload("Category")
	var err error
	if id, convErr := strconv.Atoi(key); convErr == nil {
		err = q.First(&post, id).Error
	} else {
		err = q.Where("slug = ?", key).First(&post).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	resp := articleResponse{Post: post, RelatedPosts: []models.Post{}}
	if post.CategoryID != nil {
		related := p.db.Select(postSummaryColumns).
			Preload("Author").Preload("Category").
			Where("category_id = ? AND id <> ?", *post.CategoryID, post.ID).
			Order("published_at DESC").
			Limit(5).
			Find(&resp.RelatedPosts)
		if related.Error != nil {
			// Related posts are garnish; serve the article anyway.
			utils.Sugar.Warnf("failed to load related posts for %d: %v", post.ID, related.Error)
		}
	}

	utils.CacheSetJSON("cache:post:"+key, resp, time.Hour)
	utils.JSON(ctx, http.StatusOK, resp)
}

type postListResponse struct {
	Posts   []models.Post `json:"posts"`
	Page    int           `json:"page"`
	HasMore bool          `json:"has_more"`
}

// ListTeamPosts returns paginated articles for one team category. Absent
// page/limit parameters mean server defaults, not zero values.
func (p *PostController) ListTeamPosts(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if !config.IsTeamSlug(slug) {
		utils.Fail(ctx, http.StatusNotFound, "unknown team")
		return
	}

	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))

	var posts []models.Post
	err := p.db.Select(postSummaryColumns).
		Preload("Author").Preload("Category").
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("categories.slug = ?", slug).
		Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit + 1).
		Find(&posts).Error
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to list team posts")
		return
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}
	utils.JSON(ctx, http.StatusOK, postListResponse{Posts: posts, Page: page, HasMore: hasMore})
}

// RecordView bumps the view counters for a post. Clients fire and forget;
// the response is an empty 204 either way the counter write goes.
func (p *PostController) RecordView(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid post id")
		return
	}

	now := time.Now().In(time.Local)
	localMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Atomic upsert to avoid duplicate key errors under concurrency.
	if err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
	}).Create(&models.ArticleView{Date: localMidnight, PostID: uint(id), Count: 1}).Error; err != nil {
		utils.Sugar.Warnf("view upsert failed for post %d: %v", id, err)
	}

	if err := p.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		utils.Sugar.Warnf("view counter failed for post %d: %v", id, err)
	}

	// GetPost keys its cache by whichever of id or slug the reader used, so
	// both entries go stale together.
	var cached models.Post
	slug := ""
	if err := p.db.Select("slug").First(&cached, id).Error; err == nil {
		slug = cached.Slug
	}
	utils.CacheDelete(postCacheKeys(ctx.Param("id"), slug)...)

	ctx.Status(http.StatusNoContent)
}

type searchResponse struct {
	Results []models.Post `json:"results"`
	Total   int64         `json:"total"`
}

// Search runs a title/excerpt substring search.
func (p *PostController) Search(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		utils.JSON(ctx, http.StatusOK, searchResponse{Results: []models.Post{}})
		return
	}

	pattern := "%" + q + "%"
	base := p.db.Model(&models.Post{}).Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "search failed")
		return
	}

	resp := searchResponse{Results: []models.Post{}, Total: total}
	if err := p.db.Select(postSummaryColumns).
		Preload("Author").Preload("Category").
		Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern).
		Order("published_at DESC").
		Limit(20).
		Find(&resp.Results).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "search failed")
		return
	}
	utils.JSON(ctx, http.StatusOK, resp)
}

// postCacheKeys lists every cache key an article may be stored under: the
// id-keyed entry plus the slug-keyed one when the slug is known.
func postCacheKeys(id, slug string) []string {
	keys := []string{"cache:post:" + id}
	if slug != "" && slug != id {
		keys = append(keys, "cache:post:"+slug)
	}
	return keys
}

func parsePagination(pageStr, limitStr string) (int, int) {
	page := 1
	limit := 10
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return page, limit
}
