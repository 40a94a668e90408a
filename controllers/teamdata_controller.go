package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportsmockery/smgo/sportsdata"
	"github.com/sportsmockery/smgo/utils"
)

// TeamDataController serves the static roster/schedule/stats pages backed by
// the YAML data files.
type TeamDataController struct {
	store *sportsdata.Store
}

// NewTeamDataController creates a new TeamDataController instance.
func NewTeamDataController(store *sportsdata.Store) *TeamDataController {
	return &TeamDataController{store: store}
}

// Roster handles GET /api/{team}/roster.
func (t *TeamDataController) Roster(team string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		roster, err := t.store.Roster(team)
		if err != nil {
			utils.Sugar.Errorf("roster data missing for %s: %v", team, err)
			utils.Fail(ctx, http.StatusNotFound, "roster not available")
			return
		}
		utils.JSON(ctx, http.StatusOK, roster)
	}
}

// Schedule handles GET /api/{team}/schedule.
func (t *TeamDataController) Schedule(team string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		schedule, err := t.store.Schedule(team)
		if err != nil {
			utils.Sugar.Errorf("schedule data missing for %s: %v", team, err)
			utils.Fail(ctx, http.StatusNotFound, "schedule not available")
			return
		}
		utils.JSON(ctx, http.StatusOK, schedule)
	}
}

// Stats handles GET /api/{team}/stats.
func (t *TeamDataController) Stats(team string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		stats, err := t.store.Stats(team)
		if err != nil {
			utils.Sugar.Errorf("stats data missing for %s: %v", team, err)
			utils.Fail(ctx, http.StatusNotFound, "stats not available")
			return
		}
		utils.JSON(ctx, http.StatusOK, stats)
	}
}
