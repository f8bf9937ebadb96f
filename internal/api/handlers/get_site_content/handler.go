package get_site_content

import (
	"net/http"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/config"
)

// SiteContentResponse статический контент публичных страниц
type SiteContentResponse struct {
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	WorkingHours  string   `json:"workingHours"`
	GCashNumber   string   `json:"gcashNumber"`
	GCashName     string   `json:"gcashName"`
	SocialLinks   []string `json:"socialLinks"`
	GalleryImages []string `json:"galleryImages"`
}

type Handler struct {
	content SiteContentResponse
}

// NewHandler собирает ответ один раз при старте - контент статический
func NewHandler(studio config.StudioConfig) *Handler {
	return &Handler{
		content: SiteContentResponse{
			Name:          studio.Name,
			Tagline:       studio.Tagline,
			Email:         studio.Email,
			Phone:         studio.Phone,
			Address:       studio.Address,
			WorkingHours:  studio.WorkingHours,
			GCashNumber:   studio.GCashNumber,
			GCashName:     studio.GCashName,
			SocialLinks:   studio.SocialLinks,
			GalleryImages: studio.GalleryImages,
		},
	}
}

// Handle GET /api/v1/site-content
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.content)
}
