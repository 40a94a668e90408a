package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/utils"
)

// MobileConfigController serves the admin-editable app configuration:
// feature flags, ad units, and the covered team list. Mobile clients treat
// every field as optional because this shape evolves between app releases.
type MobileConfigController struct{}

// NewMobileConfigController creates a new MobileConfigController instance.
func NewMobileConfigController() *MobileConfigController { return &MobileConfigController{} }

// Get returns the current mobile configuration.
func (m *MobileConfigController) Get(ctx *gin.Context) {
	cfg := config.Get()
	utils.JSON(ctx, http.StatusOK, gin.H{
		"features": gin.H{
			"chat":       cfg.ChatEnabled,
			"gm":         cfg.GMEnabled,
			"mock_draft": cfg.MockDraftEnabled,
			"audio":      cfg.AudioEnabled,
		},
		"ads": gin.H{
			"enabled":           cfg.AdsEnabled,
			"banner_unit":       cfg.AdUnitBanner,
			"interstitial_unit": cfg.AdUnitInterstitial,
		},
		"min_app_version": cfg.MinAppVersion,
		"teams":           config.Teams,
	})
}
