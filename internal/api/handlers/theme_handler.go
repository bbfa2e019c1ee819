package handlers

import (
	"net/http"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/service"
)

type ThemeHandler struct {
	themeService *service.ThemeService
}

func NewThemeHandler(themeService *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themeService.GetTheme(r.Context())
	if err != nil {
		writeError(w, r, "Error trying to get theme", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (h *ThemeHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var reqBody models.ThemeRequest
	if err := decodeBody(r, &reqBody); err != nil {
		writeError(w, r, "Error trying to read the body", err)
		return
	}

	if err := h.themeService.SetTheme(r.Context(), reqBody); err != nil {
		writeError(w, r, "Error trying to save theme", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
