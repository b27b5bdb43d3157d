package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

type Config struct {
	Theme            string `json:"theme"`
	ShowScrollbar    bool   `json:"show_scrollbar"`
	RememberPosition bool   `json:"remember_position"`
	WatchFile        bool   `json:"watch_file"`
	// PageStep is how many rows PgUp/PgDn move. 0 means one screen.
	PageStep int `json:"page_step"`
}

type ColorScheme struct {
	Name        string
	Background  tcell.Color
	Foreground  tcell.Color
	Selection   tcell.Color
	TitleBg     tcell.Color
	TitleFg     tcell.Color
	Modified    tcell.Color
	Scrollbar   tcell.Color
	StatusBarBg tcell.Color
	StatusBarFg tcell.Color
	DialogBg    tcell.Color
	DialogFg    tcell.Color
	DialogFocus tcell.Color
}

var Themes = map[string]*ColorScheme{
	"dark": {
		Name:        "Dark",
		Background:  tcell.ColorBlack,
		Foreground:  tcell.ColorWhite,
		Selection:   tcell.ColorDarkBlue,
		TitleBg:     tcell.ColorDarkBlue,
		TitleFg:     tcell.ColorWhite,
		Modified:    tcell.ColorYellow,
		Scrollbar:   tcell.ColorGray,
		StatusBarBg: tcell.ColorDarkBlue,
		StatusBarFg: tcell.ColorWhite,
		DialogBg:    tcell.ColorDarkGray,
		DialogFg:    tcell.ColorWhite,
		DialogFocus: tcell.ColorBlue,
	},
	"light": {
		Name:        "Light",
		Background:  tcell.ColorWhite,
		Foreground:  tcell.ColorBlack,
		Selection:   tcell.ColorLightBlue,
		TitleBg:     tcell.ColorLightGray,
		TitleFg:     tcell.ColorBlack,
		Modified:    tcell.ColorDarkRed,
		Scrollbar:   tcell.ColorGray,
		StatusBarBg: tcell.ColorLightBlue,
		StatusBarFg: tcell.ColorBlack,
		DialogBg:    tcell.ColorLightGray,
		DialogFg:    tcell.ColorBlack,
		DialogFocus: tcell.ColorLightBlue,
	},
	"monokai": {
		Name:        "Monokai",
		Background:  tcell.NewRGBColor(39, 40, 34),
		Foreground:  tcell.NewRGBColor(248, 248, 242),
		Selection:   tcell.NewRGBColor(73, 72, 62),
		TitleBg:     tcell.NewRGBColor(73, 72, 62),
		TitleFg:     tcell.NewRGBColor(248, 248, 242),
		Modified:    tcell.NewRGBColor(230, 219, 116),
		Scrollbar:   tcell.NewRGBColor(144, 144, 128),
		StatusBarBg: tcell.NewRGBColor(73, 72, 62),
		StatusBarFg: tcell.NewRGBColor(248, 248, 242),
		DialogBg:    tcell.NewRGBColor(62, 61, 50),
		DialogFg:    tcell.NewRGBColor(248, 248, 242),
		DialogFocus: tcell.NewRGBColor(102, 217, 239),
	},
	"nord": {
		Name:        "Nord",
		Background:  tcell.NewRGBColor(46, 52, 64),
		Foreground:  tcell.NewRGBColor(236, 239, 244),
		Selection:   tcell.NewRGBColor(67, 76, 94),
		TitleBg:     tcell.NewRGBColor(59, 66, 82),
		TitleFg:     tcell.NewRGBColor(236, 239, 244),
		Modified:    tcell.NewRGBColor(235, 203, 139),
		Scrollbar:   tcell.NewRGBColor(76, 86, 106),
		StatusBarBg: tcell.NewRGBColor(67, 76, 94),
		StatusBarFg: tcell.NewRGBColor(236, 239, 244),
		DialogBg:    tcell.NewRGBColor(59, 66, 82),
		DialogFg:    tcell.NewRGBColor(236, 239, 244),
		DialogFocus: tcell.NewRGBColor(136, 192, 208),
	},
	"gruvbox": {
		Name:        "Gruvbox Dark",
		Background:  tcell.NewRGBColor(40, 40, 40),
		Foreground:  tcell.NewRGBColor(235, 219, 178),
		Selection:   tcell.NewRGBColor(80, 73, 69),
		TitleBg:     tcell.NewRGBColor(60, 56, 54),
		TitleFg:     tcell.NewRGBColor(235, 219, 178),
		Modified:    tcell.NewRGBColor(250, 189, 47),
		Scrollbar:   tcell.NewRGBColor(146, 131, 116),
		StatusBarBg: tcell.NewRGBColor(60, 56, 54),
		StatusBarFg: tcell.NewRGBColor(235, 219, 178),
		DialogBg:    tcell.NewRGBColor(60, 56, 54),
		DialogFg:    tcell.NewRGBColor(235, 219, 178),
		DialogFocus: tcell.NewRGBColor(184, 187, 38),
	},
	"high-contrast": {
		Name:        "High Contrast",
		Background:  tcell.NewRGBColor(0, 0, 0),
		Foreground:  tcell.NewRGBColor(255, 255, 255),
		Selection:   tcell.NewRGBColor(0, 80, 160),
		TitleBg:     tcell.NewRGBColor(0, 0, 200),
		TitleFg:     tcell.NewRGBColor(255, 255, 255),
		Modified:    tcell.NewRGBColor(255, 255, 0),
		Scrollbar:   tcell.NewRGBColor(255, 255, 255),
		StatusBarBg: tcell.NewRGBColor(0, 0, 200),
		StatusBarFg: tcell.NewRGBColor(255, 255, 255),
		DialogBg:    tcell.NewRGBColor(40, 40, 40),
		DialogFg:    tcell.NewRGBColor(255, 255, 255),
		DialogFocus: tcell.NewRGBColor(200, 200, 0),
	},
}

func Default() *Config {
	return &Config{
		Theme:            "monokai",
		ShowScrollbar:    true,
		RememberPosition: true,
		WatchFile:        true,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["monokai"]
	}
	return theme
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pocketedit", "settings.json")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.PageStep < 0 {
		cfg.PageStep = 0
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
