package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/fs"
	"log"
	"sync"
)

var (
	assetVersions     = make(map[string]string)
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes content hashes of the given asset paths for cache busting.
// Only the first call has an effect.
func InitAssetVersions(assets fs.FS, paths ...string) {
	assetVersionsOnce.Do(func() {
		setAssetVersions(assets, paths...)
	})
}

func setAssetVersions(assets fs.FS, paths ...string) {
	assetVersionsMu.Lock()
	defer assetVersionsMu.Unlock()

	for _, path := range paths {
		version := computeFileHash(assets, path)
		if version == "" {
			version = "1"
		}
		assetVersions[path] = version
		log.Printf("[INFO] Asset version initialized: %s -> %s", path, version)
	}
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(assets fs.FS, path string) string {
	file, err := assets.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash of path, or "1" when unknown.
// The ctx parameter keeps the signature in line with the other request helpers.
func GetAssetVersion(ctx context.Context, path string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()

	if version, ok := assetVersions[path]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the /static URL of path with its version query
func AssetURL(ctx context.Context, path string) string {
	return "/static/" + path + "?v=" + GetAssetVersion(ctx, path)
}
