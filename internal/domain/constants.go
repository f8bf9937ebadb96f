package domain

// Payment proof file constraints
const (
	// MaxProofFileSize максимальный размер файла чека оплаты (5 MiB)
	MaxProofFileSize = 5 * 1024 * 1024

	// MaxAvatarFileSize максимальный размер аватара (5 MiB)
	MaxAvatarFileSize = 5 * 1024 * 1024
)

// AllowedImageMIMETypes допустимые MIME-типы загружаемых изображений
var AllowedImageMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Business validation constants
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxPhoneLength   = 32
	MaxNotesLength   = 2000
	MaxMessageLength = 4000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RecentBookingsLimit количество бронирований в блоке "недавние" на дашборде
const RecentBookingsLimit = 5

// CalendarCells размер сетки календаря: фиксированные 6 недель по 7 дней
const CalendarCells = 42
