package pos

import (
	"time"

	"github.com/spf13/cast"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

// LoadSettings always returns a complete record: missing fields are filled
// with the documented defaults, a corrupt entry falls back entirely.
func (s *Store) LoadSettings() domain.Settings {
	settings := domain.DefaultSettings()
	if s.kv.Get(domain.KvSettings, &settings) {
		return settings.Normalize()
	}
	// the legacy generation stored numerics and booleans as strings;
	// retry as a loose map and coerce field by field
	var loose map[string]interface{}
	if s.kv.Get(domain.KvSettings, &loose) {
		return coerceSettings(loose)
	}
	return settings
}

// SaveSettings persists the record. A plaintext PIN is digested before it
// ever reaches the store.
func (s *Store) SaveSettings(settings domain.Settings) bool {
	settings = settings.Normalize()
	if settings.AdminPin != "" && !IsPinDigest(settings.AdminPin) {
		settings.AdminPin = common.Sha256HashWithSalt(settings.AdminPin, common.GetSecretSalt())
	}
	return s.kv.Set(domain.KvSettings, settings)
}

// VerifyPin checks a candidate PIN against the stored digest. A device
// with the PIN gate disabled accepts anything.
func (s *Store) VerifyPin(pin string) bool {
	settings := s.LoadSettings()
	if !settings.PinEnabled {
		return true
	}
	return common.Sha256HashWithSalt(pin, common.GetSecretSalt()) == settings.AdminPin
}

// UpdateLastBackupTimestamp stamps the settings record with now. Display
// convenience only, nothing depends on it for correctness.
func (s *Store) UpdateLastBackupTimestamp() bool {
	settings := s.LoadSettings()
	settings.LastBackupTimestamp = time.Now().UnixMilli()
	return s.kv.Set(domain.KvSettings, settings)
}

func coerceSettings(loose map[string]interface{}) domain.Settings {
	settings := domain.DefaultSettings()
	if v, ok := loose["hotelName"]; ok {
		settings.HotelName = cast.ToString(v)
	}
	if v, ok := loose["hotelAddress"]; ok {
		settings.HotelAddress = cast.ToString(v)
	}
	if v, ok := loose["hotelPhone"]; ok {
		settings.HotelPhone = cast.ToString(v)
	}
	if v, ok := loose["gstEnabled"]; ok {
		settings.GstEnabled = cast.ToBool(v)
	}
	if v, ok := loose["gstPercentage"]; ok {
		settings.GstPercentage = cast.ToFloat64(v)
	}
	if v, ok := loose["pinEnabled"]; ok {
		settings.PinEnabled = cast.ToBool(v)
	}
	if v, ok := loose["adminPin"]; ok {
		settings.AdminPin = cast.ToString(v)
	}
	if v, ok := loose["lastBackupTimestamp"]; ok {
		settings.LastBackupTimestamp = cast.ToInt64(v)
	}
	return settings.Normalize()
}

// IsPinDigest reports whether value already looks like a stored digest
// rather than a plaintext PIN.
func IsPinDigest(value string) bool {
	if len(value) != 64 {
		return false
	}
	for _, c := range value {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
