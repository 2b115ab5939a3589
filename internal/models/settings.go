package models

type SystemSettings struct {
	BgGradientStart   string  `json:"bgGradientStart" example:"#1a1a2e"`
	BgGradientEnd     string  `json:"bgGradientEnd" example:"#16213e"`
	AccentColor       string  `json:"accentColor" example:"cyan"`
	FontFamily        string  `json:"fontFamily" example:"JetBrains Mono"`
	AnimationsEnabled bool    `json:"animationsEnabled"`
	GlassOpacity      float64 `json:"glassOpacity" example:"0.55"`
	DeviceName        string  `json:"deviceName" example:"URBANSHADE-TERMINAL"`
	Brightness        int     `json:"brightness" example:"80"`
	Volume            int     `json:"volume" example:"70"`
	SoundEffects      bool    `json:"soundEffects"`
	Notifications     bool    `json:"notifications"`
}
