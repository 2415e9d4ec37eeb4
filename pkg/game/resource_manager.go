package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Skin image file names looked up inside a skin directory.
const (
	HitCircleFile        = "hitcircle.png"
	HitCircleOverlayFile = "hitcircleoverlay.png"
)

// ResourceManager is responsible for loading and caching image assets,
// ensuring that each file is decoded only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches are plain Go maps.
// All loading happens on the game loop goroutine.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	fontFaceCache map[string]*text.GoTextFace // Cache for font faces: "path:size" -> Face
}

// defaultFontKey is the cache path used for the built-in Go Regular font.
const defaultFontKey = "goregular"

// SkinImages holds the sprite images used by legacy slider rendering.
// A nil field means the skin does not provide that image.
type SkinImages struct {
	HitCircle        *ebiten.Image
	HitCircleOverlay *ebiten.Image
}

// NewResourceManager creates a ResourceManager with an empty cache.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The file path to the image resource.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// It returns nil if the image has not been loaded yet.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSkin loads the hit circle sprites from a skin directory.
//
// Missing files are not an error: the corresponding field stays nil and the
// render context falls back to generated textures. An empty dir returns an
// empty SkinImages.
//
// Returns:
//   - SkinImages with whatever images the directory provides.
//   - An error if an existing file cannot be decoded.
func (rm *ResourceManager) LoadSkin(dir string) (SkinImages, error) {
	var skin SkinImages
	if dir == "" {
		return skin, nil
	}

	load := func(name string) (*ebiten.Image, error) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			log.Printf("[ResourceManager] Skin image %s not found, using generated texture", path)
			return nil, nil
		}
		return rm.LoadImage(path)
	}

	var err error
	if skin.HitCircle, err = load(HitCircleFile); err != nil {
		return SkinImages{}, err
	}
	if skin.HitCircleOverlay, err = load(HitCircleOverlayFile); err != nil {
		return SkinImages{}, err
	}

	log.Printf("[ResourceManager] Skin loaded from %s (hitcircle=%v, overlay=%v)",
		dir, skin.HitCircle != nil, skin.HitCircleOverlay != nil)
	return skin, nil
}

// LoadFont loads a TrueType/OpenType font file and caches the face for the given size.
//
// Parameters:
//   - path: The file path of the font resource.
//   - size: The font size in points.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	if face := rm.GetFont(path, size); face != nil {
		return face, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	return rm.newFontFace(path, fontData, size)
}

// DefaultFont returns the built-in Go Regular face at the given size.
// It is used for slider labels when no font file is configured.
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	if face := rm.GetFont(defaultFontKey, size); face != nil {
		return face, nil
	}
	return rm.newFontFace(defaultFontKey, goregular.TTF, size)
}

// GetFont retrieves a previously loaded font face, or nil if it is not cached.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fontCacheKey(path, size)]
}

func (rm *ResourceManager) newFontFace(path string, data []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[fontCacheKey(path, size)] = face
	return face, nil
}

func fontCacheKey(path string, size float64) string {
	return fmt.Sprintf("%s:%.1f", path, size)
}
