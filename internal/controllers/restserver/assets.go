package restserver

import (
	"embed"
	"io/fs"
	"os"
)

// Embed the REST server assets
//
//go:embed all:assets
var assetsFS embed.FS

// AssetsDirEnv names the environment variable that points the server at an
// on-disk assets directory.
const AssetsDirEnv = "IRRIGATIONDASH_ASSETS_DIR"

// GetAssets returns the assets filesystem, either from disk or embedded
func GetAssets() fs.FS {
	// Serving straight from disk lets templates, CSS and JS be edited
	// without recompiling.
	if dir := os.Getenv(AssetsDirEnv); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}

	// Return a sub-filesystem starting from the "assets" directory
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic("failed to create assets sub-filesystem: " + err.Error())
	}
	return assets
}
