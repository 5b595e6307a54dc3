package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// page is one decoded image and the format name reported by the decoder.
type page struct {
	img    image.Image
	format string
}

// ImageCache holds decoded page images keyed by absolute path.
//
// Relative and absolute spellings of the same file share one entry. Entries
// stay until Evict or Clear; the server process handles one page at a time,
// so the cache is expected to stay small.
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("page.png")
type ImageCache struct {
	mu    sync.RWMutex
	pages map[string]page
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{pages: make(map[string]page)}
}

func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Load returns the decoded image at path, reading it from disk on first use.
func (c *ImageCache) Load(path string) (image.Image, error) {
	p, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return p.img, nil
}

func (c *ImageCache) load(path string) (page, error) {
	key := cacheKey(path)

	c.mu.RLock()
	p, ok := c.pages[key]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return page{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return page{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	p = page{img: img, format: format}

	c.mu.Lock()
	c.pages[key] = p
	c.mu.Unlock()
	return p, nil
}

// Len returns the number of cached pages.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Clear drops every cached page.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.pages = make(map[string]page)
	c.mu.Unlock()
}

// Evict drops the page cached for path, if any.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.pages, cacheKey(path))
	c.mu.Unlock()
}

// PageInfo describes a loaded page. Width and Height are the page size the
// line clustering expects.
type PageInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Format is the decoder name: "png", "jpeg", "gif", "bmp", "tiff" or
	// "webp".
	Format string `json:"format"`

	// Gray is true for single-channel pages, which detectors can use as-is.
	Gray bool `json:"gray"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadPageInfo loads path through cache and describes it.
func LoadPageInfo(cache *ImageCache, path string) (*PageInfo, error) {
	p, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	var gray bool
	switch p.img.(type) {
	case *image.Gray, *image.Gray16:
		gray = true
	}

	b := p.img.Bounds()
	return &PageInfo{
		Path:          path,
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        p.format,
		Gray:          gray,
		FileSizeBytes: stat.Size(),
	}, nil
}
