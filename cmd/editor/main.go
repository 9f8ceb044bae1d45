package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/mapmaker/localization"
)

func main() {
	locale := flag.String("locale", "en", "locale name for UI strings")
	localeDir := flag.String("locale-dir", "", "directory of locale yaml files to hot-reload over the embedded strings")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	table, err := localization.LoadLocale(*locale)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *localization.Watcher
	if *localeDir != "" {
		watcher, err = localization.NewWatcher(*localeDir)
		if err != nil {
			log.Printf("locale watcher disabled: %v", err)
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("mapmaker")

	app := NewApp(table, watcher)
	defer app.Close()

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
