// Command sgrecho prints its arguments styled with ANSI SGR escape
// sequences, an echo that understands color.
//
//	sgrecho --fg red --style bold,underline -- mind the gap
//	sgrecho --theme warn "disk almost full"
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/termtext/sgr"
)

func main() {
	var (
		fgName    = pflag.String("fg", "", "foreground color name, e.g. red or bright-cyan")
		bgName    = pflag.String("bg", "", "background color name")
		styles    = pflag.StringSlice("style", nil, "emphasis names to apply, e.g. bold,underline")
		themeName = pflag.String("theme", "", "named preset, built-in or from the theme file")
		themePath = pflag.String("themes", "", "path to a YAML theme file")
		noReset   = pflag.Bool("no-reset", false, "leave the styling active, skip the trailing reset")
		noNewline = pflag.BoolP("no-newline", "n", false, "do not print the trailing newline")
	)
	pflag.Parse()

	text, err := buildText(pflag.Args(), *fgName, *bgName, *styles, *themeName, *themePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sgrecho:", err)
		os.Exit(1)
	}

	w := sgr.NewStreamWriter(os.Stdout)
	if err := w.Print(text); err != nil {
		fmt.Fprintln(os.Stderr, "sgrecho:", err)
		os.Exit(1)
	}
	if !*noReset {
		_ = w.Reset()
	}
	if !*noNewline {
		fmt.Println()
	}
}

// buildText assembles the Text to render: the theme's intentions as the
// base, explicit flags merged over it, the joined arguments as payload.
func buildText(args []string, fgName, bgName string, styles []string, themeName, themePath string) (sgr.Text, error) {
	flags := sgr.New("")
	if fgName != "" {
		c, err := sgr.ParseColor(fgName)
		if err != nil {
			return sgr.Text{}, fmt.Errorf("--fg %s: %w", fgName, err)
		}
		flags = flags.FG(c)
	}
	if bgName != "" {
		c, err := sgr.ParseColor(bgName)
		if err != nil {
			return sgr.Text{}, fmt.Errorf("--bg %s: %w", bgName, err)
		}
		flags = flags.BG(c)
	}
	for _, name := range styles {
		s, err := sgr.ParseStyle(name)
		if err != nil {
			return sgr.Text{}, fmt.Errorf("--style %s: %w", name, err)
		}
		flags = flags.With(s)
	}

	base := sgr.New("")
	if themeName != "" {
		themes, err := LoadThemes(themePath)
		if err != nil {
			return sgr.Text{}, err
		}
		theme, ok := themes[themeName]
		if !ok {
			return sgr.Text{}, fmt.Errorf("--theme %s: %w", themeName, ErrTheme)
		}
		if base, err = theme.Text(); err != nil {
			return sgr.Text{}, err
		}
	}
	return sgr.Merge(base, flags).Payload(strings.Join(args, " ")), nil
}
