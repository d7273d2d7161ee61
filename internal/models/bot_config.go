package models

// BotConfig holds every operator-tunable setting. A stored config may have
// any subset of fields; Resolve fills the gaps so callers always see a
// complete object.
type BotConfig struct {
	BotName        string  `json:"bot_name"`
	ThemeColor     string  `json:"theme_color"`
	WelcomeMessage string  `json:"welcome_message"`
	SystemPrompt   string  `json:"system_prompt"`
	KnowledgeBase  string  `json:"knowledge_base"`
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	ClientAPIKey   string  `json:"client_api_key"`
}

// DefaultBotConfig returns the built-in configuration used when the stored
// document is missing or corrupt.
func DefaultBotConfig() BotConfig {
	return BotConfig{
		BotName:        "Lucy AI",
		ThemeColor:     "#0d6efd",
		WelcomeMessage: "Hello!",
		SystemPrompt:   "",
		KnowledgeBase:  "",
		Model:          "gemini-flash-latest",
		Temperature:    0.7,
		ClientAPIKey:   "lucy-dev-12345",
	}
}

// Resolve fills unset fields with their defaults. A temperature of exactly
// zero counts as unset.
func (c BotConfig) Resolve() BotConfig {
	def := DefaultBotConfig()
	if c.BotName == "" {
		c.BotName = def.BotName
	}
	if c.ThemeColor == "" {
		c.ThemeColor = def.ThemeColor
	}
	if c.WelcomeMessage == "" {
		c.WelcomeMessage = def.WelcomeMessage
	}
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Temperature == 0 {
		c.Temperature = def.Temperature
	}
	if c.ClientAPIKey == "" {
		c.ClientAPIKey = def.ClientAPIKey
	}
	return c
}

// BotConfigPatch carries a partial settings update.
type BotConfigPatch struct {
	BotName        *string  `json:"bot_name"`
	ThemeColor     *string  `json:"theme_color"`
	WelcomeMessage *string  `json:"welcome_message"`
	SystemPrompt   *string  `json:"system_prompt"`
	KnowledgeBase  *string  `json:"knowledge_base"`
	Model          *string  `json:"model"`
	Temperature    *float64 `json:"temperature"`
	ClientAPIKey   *string  `json:"client_api_key"`
}

// Apply merges the patch into the config.
func (p BotConfigPatch) Apply(c *BotConfig) {
	if p.BotName != nil {
		c.BotName = *p.BotName
	}
	if p.ThemeColor != nil {
		c.ThemeColor = *p.ThemeColor
	}
	if p.WelcomeMessage != nil {
		c.WelcomeMessage = *p.WelcomeMessage
	}
	if p.SystemPrompt != nil {
		c.SystemPrompt = *p.SystemPrompt
	}
	if p.KnowledgeBase != nil {
		c.KnowledgeBase = *p.KnowledgeBase
	}
	if p.Model != nil {
		c.Model = *p.Model
	}
	if p.Temperature != nil {
		c.Temperature = *p.Temperature
	}
	if p.ClientAPIKey != nil {
		c.ClientAPIKey = *p.ClientAPIKey
	}
}

// Language is one entry of the supported-language catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages lists the languages the assistant serves.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "am", Name: "Amharic"},
		{Code: "om", Name: "Oromo"},
		{Code: "ti", Name: "Tigrinya"},
		{Code: "so", Name: "Somali"},
		{Code: "en", Name: "English"},
	}
}
