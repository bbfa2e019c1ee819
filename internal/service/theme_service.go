package service

import (
	"context"
	"fmt"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/repository"
)

type ThemeService struct {
	settings repository.SettingStore
}

func NewThemeService(settings repository.SettingStore) *ThemeService {
	return &ThemeService{settings: settings}
}

// GetTheme falls back to the default when the value is absent or empty.
func (s *ThemeService) GetTheme(ctx context.Context) (string, error) {
	theme, _, err := s.settings.Get(ctx, models.ThemeKey)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	if theme == "" {
		return models.DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme overwrites the stored theme. Any string, including "", is accepted;
// only an absent value is rejected.
func (s *ThemeService) SetTheme(ctx context.Context, req models.ThemeRequest) error {
	if req.Theme == nil {
		return fmt.Errorf("set theme: theme: %w", ErrMissingField)
	}
	if err := s.settings.Put(ctx, models.ThemeKey, *req.Theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
