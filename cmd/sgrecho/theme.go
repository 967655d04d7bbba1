package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/termtext/sgr"
	"gopkg.in/yaml.v3"
)

var ErrTheme = errors.New("unknown theme")

// Theme is a named styling preset: color names and emphasis names as
// they appear in a YAML theme file.
type Theme struct {
	FG     string   `yaml:"fg,omitempty"`
	BG     string   `yaml:"bg,omitempty"`
	Styles []string `yaml:"styles,omitempty"`
}

// builtins cover the common cases when no theme file is given.
var builtins = map[string]Theme{
	"ok":    {FG: "green"},
	"info":  {FG: "cyan"},
	"warn":  {FG: "yellow", Styles: []string{"bold"}},
	"error": {FG: "bright-red", Styles: []string{"bold"}},
}

// LoadThemes returns the built-in presets, overlaid with the themes of
// the YAML file at path when one is given. A file theme with a
// built-in's name replaces the built-in.
func LoadThemes(path string) (map[string]Theme, error) {
	themes := make(map[string]Theme, len(builtins))
	for name, theme := range builtins {
		themes[name] = theme
	}
	if path == "" {
		return themes, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme file: %w", err)
	}
	var file struct {
		Themes map[string]Theme `yaml:"themes"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	for name, theme := range file.Themes {
		themes[name] = theme
	}
	return themes, nil
}

// Text converts the theme's names into the styling intentions they
// describe, with no payload.
func (th Theme) Text() (sgr.Text, error) {
	t := sgr.New("")
	if th.FG != "" {
		c, err := sgr.ParseColor(th.FG)
		if err != nil {
			return sgr.Text{}, fmt.Errorf("theme fg %q: %w", th.FG, err)
		}
		t = t.FG(c)
	}
	if th.BG != "" {
		c, err := sgr.ParseColor(th.BG)
		if err != nil {
			return sgr.Text{}, fmt.Errorf("theme bg %q: %w", th.BG, err)
		}
		t = t.BG(c)
	}
	for _, name := range th.Styles {
		s, err := sgr.ParseStyle(name)
		if err != nil {
			return sgr.Text{}, fmt.Errorf("theme style %q: %w", name, err)
		}
		t = t.With(s)
	}
	return t, nil
}
