package types

import (
	"errors"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("types: invalid date string format, expected YYYY-MM-DD")

// DateString календарная дата без компонента времени в формате "YYYY-MM-DD"
// Сравнение дат выполняется по полям год/месяц/день, без нормализации таймзон
type DateString string

// NewDateString создает DateString из time.Time (берёт локальные календарные поля)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", ErrInvalidDateString
	}
	return NewDateString(t), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что дата в корректном формате
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return ErrInvalidDateString
	}
	return nil
}

// Time конвертирует дату в time.Time (полночь, UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateString
	}
	return t, nil
}

// Equal возвращает true, если обе даты указывают на один календарный день
func (d DateString) Equal(other DateString) bool {
	return d == other
}

// Before возвращает true, если дата раньше other
// Для корректных дат ISO-формат сравнивается лексикографически
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// SameDay возвращает true, если дата совпадает с календарным днём t
func (d DateString) SameDay(t time.Time) bool {
	return string(d) == t.Format(DateFormat)
}
