// plotrc previews the library's styles, contexts, and palettes in the
// terminal.
//
// Usage:
//
//	plotrc [flags]
//
// Flags:
//
//	-list            List style, context, and palette names
//	-style NAME      Show the resolved parameters of a style preset
//	-context NAME    Show the resolved parameters of a context preset
//	-palette NAME    Show a palette as color swatches
//	-n N             Number of palette colors (default 6)
//	-desat F         Palette desaturation factor in (0,1]
//	-rc              Apply the user config and print the effective parameters
//	-tui             Launch the interactive palette browser
//	-verbose         Enable debug logging
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/plotrc/pkg/config"
	"gitlab.com/tinyland/lab/plotrc/pkg/palette"
	"gitlab.com/tinyland/lab/plotrc/pkg/params"
	"gitlab.com/tinyland/lab/plotrc/pkg/scale"
	"gitlab.com/tinyland/lab/plotrc/pkg/style"
	"gitlab.com/tinyland/lab/plotrc/pkg/swatch"
)

func main() {
	var (
		listAll     = flag.Bool("list", false, "List style, context, and palette names")
		styleName   = flag.String("style", "", "Show the resolved parameters of a style preset")
		contextName = flag.String("context", "", "Show the resolved parameters of a context preset")
		paletteName = flag.String("palette", "", "Show a palette as color swatches")
		nColors     = flag.Int("n", 6, "Number of palette colors")
		desat       = flag.Float64("desat", 0, "Palette desaturation factor in (0,1]")
		showRC      = flag.Bool("rc", false, "Apply the user config and print the effective parameters")
		runTUI      = flag.Bool("tui", false, "Launch the interactive palette browser")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := run(*listAll, *styleName, *contextName, *paletteName, *nColors, *desat, *showRC, *runTUI); err != nil {
		fmt.Fprintf(os.Stderr, "plotrc: %v\n", err)
		os.Exit(1)
	}
}

func run(listAll bool, styleName, contextName, paletteName string, n int, desat float64, showRC, runTUI bool) error {
	switch {
	case listAll:
		printLists()
		return nil

	case showRC:
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ps := params.NewStore()
		if err := config.Apply(cfg, ps); err != nil {
			return err
		}
		fmt.Println(swatch.ParamsCard("effective rc", ps.All()))
		return nil

	case styleName != "":
		p, err := style.Named(styleName, nil)
		if err != nil {
			return err
		}
		fmt.Println(swatch.ParamsCard(styleName, p))
		return nil

	case contextName != "":
		p, err := scale.Named(contextName, nil)
		if err != nil {
			return err
		}
		fmt.Println(swatch.ParamsCard(contextName, p))
		return nil

	case paletteName != "":
		p, err := palette.Colors(paletteName, n, desat)
		if err != nil {
			return err
		}
		fmt.Println(swatch.PaletteCard(paletteName, p))
		return nil

	case runTUI:
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("the browser needs a terminal; stdout is not a tty")
		}
		width, height := terminalSize()
		slog.Debug("starting palette browser",
			"width", width, "height", height, "profile", swatch.ProfileName())
		m := newBrowser(n, desat, width, height)
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err

	default:
		flag.Usage()
		return nil
	}
}

func printLists() {
	fmt.Printf("styles:    %s\n", strings.Join(style.Names(), ", "))
	fmt.Printf("contexts:  %s\n", strings.Join(scale.Names(), ", "))
	fmt.Printf("palettes:  %s\n", strings.Join(palette.Names(), ", "))
	fmt.Printf("terminal:  %s\n", swatch.ProfileName())
}

// terminalSize reports the stdout terminal dimensions, with a conservative
// fallback when detection fails.
func terminalSize() (width, height int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
