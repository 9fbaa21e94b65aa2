package handler

import (
	"time"

	"github.com/habitgrid/internal/locale"
	"github.com/habitgrid/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	habits          *service.HabitService
	defaultLanguage string
	now             func() time.Time
}

// NewAPI constructs a handler set around the application state container.
func NewAPI(habits *service.HabitService, defaultLanguage string) *API {
	language := locale.NormalizeLanguage(defaultLanguage)
	if language == "" {
		language = locale.LanguageEnglish
	}

	return &API{
		habits:          habits,
		defaultLanguage: language,
		now:             time.Now,
	}
}
