package main

import (
	"context"
	"log"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/llm"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/routes"
	"github.com/sportsmockery/smgo/sportsdata"
	"github.com/sportsmockery/smgo/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer utils.Logger.Sync()

	db := config.InitDatabase(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.ArticleView{},
		&models.ChatMessage{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollVote{},
		&models.GMSession{},
		&models.GMTrade{},
		&models.MockDraft{},
		&models.MockDraftPick{},
	)

	llmClient, err := llm.New(context.Background(), cfg)
	if err != nil {
		utils.Sugar.Warnf("llm disabled: %v", err)
		llmClient = nil
	}

	store := sportsdata.New(cfg.DataDir)

	router := routes.SetupRouter(db, store, llmClient)

	utils.Sugar.Infof("listening on :%s", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, router); err != nil {
		utils.Sugar.Fatalf("server exited: %v", err)
	}
}
