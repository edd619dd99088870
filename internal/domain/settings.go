package domain

// Settings is the singleton device configuration. AdminPin holds a salted
// sha256 digest, never the plaintext PIN.
type Settings struct {
	HotelName           string  `json:"hotelName"`
	HotelAddress        string  `json:"hotelAddress"`
	HotelPhone          string  `json:"hotelPhone"`
	GstEnabled          bool    `json:"gstEnabled"`
	GstPercentage       float64 `json:"gstPercentage"`
	PinEnabled          bool    `json:"pinEnabled"`
	AdminPin            string  `json:"adminPin,omitempty"`
	LastBackupTimestamp int64   `json:"lastBackupTimestamp,omitempty"`
}

// Documented defaults for a freshly installed device.
const (
	DefaultHotelName     = "HOTEL GRACE"
	DefaultGstPercentage = 5.0
	DefaultGstEnabled    = true
	DefaultPinEnabled    = false
)

// DefaultSettings returns a fully populated Settings record.
func DefaultSettings() Settings {
	return Settings{
		HotelName:     DefaultHotelName,
		GstEnabled:    DefaultGstEnabled,
		GstPercentage: DefaultGstPercentage,
		PinEnabled:    DefaultPinEnabled,
	}
}

// Normalize repairs fields a partially stored record may have left
// unusable so callers never observe one. Zero GST is a valid owner choice
// and is kept; only values outside 0-100 fall back.
func (s Settings) Normalize() Settings {
	if s.HotelName == "" {
		s.HotelName = DefaultHotelName
	}
	if s.GstPercentage < 0 || s.GstPercentage > 100 {
		s.GstPercentage = DefaultGstPercentage
	}
	return s
}
