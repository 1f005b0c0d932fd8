package catalog

import (
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
)

// CatalogResponse wraps a static dataset with its element count and origin.
type CatalogResponse struct {
	Success   bool        `json:"success"`
	DataCount int         `json:"data_count"`
	Data      interface{} `json:"data"`
	Source    string      `json:"source"`
}

// Handler serves the frozen services and clients catalogs.
type Handler struct {
	clients []Client
	log     logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	clients := make([]Client, 0, len(clientLogoFiles))
	for _, file := range clientLogoFiles {
		clients = append(clients, Client{
			Name:    clientName(file),
			LogoURL: logoBase + file,
		})
	}
	return &Handler{
		clients: clients,
		log:     log.WithComponent("catalog"),
	}
}

// Services returns the service catalog.
func (h *Handler) Services(c echo.Context) error {
	return apperrors.RespondWithSuccess(c, CatalogResponse{
		Success:   true,
		DataCount: len(services),
		Data:      services,
		Source:    sourceHost,
	})
}

// Clients returns the client-logo catalog.
func (h *Handler) Clients(c echo.Context) error {
	return apperrors.RespondWithSuccess(c, CatalogResponse{
		Success:   true,
		DataCount: len(h.clients),
		Data:      h.clients,
		Source:    sourceHost,
	})
}

// clientName derives a display name from a logo filename: the extension is
// dropped, underscores and hyphens become spaces, and each word is
// title-cased.
func clientName(filename string) string {
	name := filename
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	var b strings.Builder
	prevLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
