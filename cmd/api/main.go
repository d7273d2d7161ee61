package main

import (
	"github.com/lucyai/lucy-support-be/internal/config"
	"github.com/lucyai/lucy-support-be/internal/core/llm"
	"github.com/lucyai/lucy-support-be/internal/core/speech"
	"github.com/lucyai/lucy-support-be/internal/core/usage"
	"github.com/lucyai/lucy-support-be/internal/server"
	"github.com/lucyai/lucy-support-be/internal/shared/utils"
	"github.com/lucyai/lucy-support-be/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)

	st, err := store.New(cfg.DataDir, cfg.ClientAPIKey)
	if err != nil {
		utils.LogFatal("failed to init store", err, nil)
	}

	provider := llm.NewProviderFromConfig(cfg)
	if provider.Configured() {
		utils.LogInfo("model provider configured", map[string]interface{}{"provider": provider.Name()})
	} else {
		utils.LogWarn("model provider not configured, support replies will be sentinels", map[string]interface{}{"provider": provider.Name()})
	}

	app := server.New(server.Deps{
		Config:   cfg,
		Store:    st,
		Gateway:  llm.NewGateway(provider),
		Activity: usage.NewLog(1000),
		Speech:   speech.NewService(cfg.OpenAIKey),
	})

	port := cfg.Port
	if port == "" {
		port = "5000"
	}
	utils.LogInfo("lucy-support-api listening", map[string]interface{}{"port": port})
	if err := app.Listen(":" + port); err != nil {
		utils.LogFatal("server stopped", err, nil)
	}
}
