package render

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-text/typesetting/fontscan"

	"github.com/sumonst21/rnote"
)

var (
	fontsOnce sync.Once
	fontMap   *fontscan.FontMap
)

// Fonts returns the process-wide font database, loading the system
// fonts on first use. The map is initialized exactly once and treated
// as read-only afterwards, so it is safe to share across goroutines.
//
// Drawable entities that lay out text resolve their faces against this
// database before emitting fragments, so on-canvas layout and exported
// SVG agree on font selection. Vector backends resolve raster-time text
// through their own loading.
func Fonts() *fontscan.FontMap {
	fontsOnce.Do(func() {
		fontMap = fontscan.NewFontMap(log.New(io.Discard, "", 0))

		cacheDir := ""
		if dir, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(dir, "rnote", "fontscan")
		}
		if err := fontMap.UseSystemFonts(cacheDir); err != nil {
			rnote.Logger().Warn("loading system fonts failed", "error", err)
			return
		}
		rnote.Logger().Debug("font database initialized")
	})
	return fontMap
}
