package store

import "github.com/lucyai/lucy-support-be/internal/models"

func (s *Store) loadBotConfig() (models.BotConfig, LoadState) {
	var cfg models.BotConfig
	state := s.readDoc(configFile, &cfg)
	if state != LoadOK {
		return models.BotConfig{}, state
	}
	return cfg, LoadOK
}

// resolveBotConfig fills the support key from the process-level fallback
// before the built-in defaults take over. The stored key always wins.
func (s *Store) resolveBotConfig(cfg models.BotConfig) models.BotConfig {
	if cfg.ClientAPIKey == "" {
		cfg.ClientAPIKey = s.clientKey
	}
	return cfg.Resolve()
}

// BotConfig returns the stored configuration resolved to a complete
// object. Missing or corrupt storage yields the built-in default.
func (s *Store) BotConfig() models.BotConfig {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	cfg, _ := s.loadBotConfig()
	return s.resolveBotConfig(cfg)
}

// BotConfigState returns the resolved configuration with its load state.
func (s *Store) BotConfigState() (models.BotConfig, LoadState) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	cfg, state := s.loadBotConfig()
	return s.resolveBotConfig(cfg), state
}

// MergeBotConfig merges the patch into the stored configuration, persists
// it and returns the resolved result. Only stored fields are written; the
// key fallback is applied at read time, never persisted.
func (s *Store) MergeBotConfig(patch models.BotConfigPatch) (models.BotConfig, error) {
	s.configMu.Lock()
	defer s.configMu.Unlock()

	cfg, _ := s.loadBotConfig()
	patch.Apply(&cfg)
	if err := s.writeDoc(configFile, cfg); err != nil {
		return models.BotConfig{}, err
	}
	return s.resolveBotConfig(cfg), nil
}
