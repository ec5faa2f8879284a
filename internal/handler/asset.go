package handler

import (
	"os"
	"path/filepath"
	"strings"

	"neuro-site/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderImageFallback is set when the fallback image was served instead of the requested one.
const HeaderImageFallback = "X-Image-Fallback"

// placeholderSVG is served when even the configured fallback file is missing.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300"><rect width="400" height="300" fill="#e8eef3"/><path d="M150 200l40-50 30 35 20-25 50 40z" fill="#b7c6d3"/><circle cx="250" cy="110" r="18" fill="#b7c6d3"/></svg>`

// AssetHandler serves images. A missing image is never an error: the
// fallback image is sent with status 200.
type AssetHandler struct {
	root     string
	fallback string
}

func NewAssetHandler(imageDir, fallback string) *AssetHandler {
	root, err := filepath.Abs(imageDir)
	if err != nil {
		root = filepath.Clean(imageDir)
	}
	return &AssetHandler{root: root, fallback: fallback}
}

func (h *AssetHandler) ServeImage(c *fiber.Ctx) error {
	requested := c.Params("*")
	if full, ok := h.resolve(requested); ok {
		return c.SendFile(full)
	}

	logger.Get().Debug("Image not found, serving fallback", zap.String("path", requested))
	c.Set(HeaderImageFallback, "true")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	if full, ok := h.resolve(h.fallback); ok {
		return c.SendFile(full)
	}
	c.Type("svg")
	return c.Status(fiber.StatusOK).SendString(placeholderSVG)
}

// resolve maps a request path to a regular file inside the image root.
func (h *AssetHandler) resolve(requested string) (string, bool) {
	if requested == "" || strings.ContainsRune(requested, 0) {
		return "", false
	}
	full := filepath.Join(h.root, filepath.FromSlash(filepath.Clean("/"+requested)))
	rel, err := filepath.Rel(h.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return full, true
}
