package app

import (
	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

// checkSettings makes sure a complete settings record exists so the first
// LoadSettings after install already sees every documented default.
func (a *Application) checkSettings() {
	if a.posStore.Kv().Exists(domain.KvSettings) {
		return
	}
	if !a.posStore.SaveSettings(domain.DefaultSettings()) {
		zap.L().Error("failed to initialize default settings")
		return
	}
	zap.L().Info("initialized default settings",
		zap.String("hotelName", domain.DefaultHotelName))
}

// checkDefaultCategories seeds the category set, which also pins the
// reserved "All" entry in place.
func (a *Application) checkDefaultCategories() {
	if a.posStore.Kv().Exists(domain.KvCategories) {
		return
	}
	defaults := a.posStore.GetDefaultCategories()
	if !a.posStore.SaveCategories(defaults) {
		zap.L().Error("failed to initialize default categories")
		return
	}
	zap.L().Info("initialized default categories", zap.Int("count", len(defaults)))
}
