package get_booking_calendar

import (
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

// buildMonthGrid строит сетку календаря на месяц: фиксированные 42 ячейки
// Ведущие ячейки добирают хвост предыдущего месяца по дню недели первого
// числа (неделя начинается с воскресенья), затем идут дни месяца, затем
// начало следующего месяца до ровно 42 ячеек
func buildMonthGrid(year int, month time.Month, now time.Time, countByDate map[types.DateString]int) []Cell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(firstOfMonth.Weekday())

	gridStart := firstOfMonth.AddDate(0, 0, -leading)
	cells := make([]Cell, 0, domain.CalendarCells)

	for i := 0; i < domain.CalendarCells; i++ {
		day := gridStart.AddDate(0, 0, i)
		date := types.NewDateString(day)

		cells = append(cells, Cell{
			Date:         date,
			Day:          day.Day(),
			InMonth:      day.Month() == month && day.Year() == year,
			IsToday:      date.SameDay(now),
			BookingCount: countByDate[date],
		})
	}

	return cells
}

// countBookingsByDate группирует бронирования по датам
func countBookingsByDate(bookings []*domain.Booking) map[types.DateString]int {
	counts := make(map[types.DateString]int, len(bookings))
	for _, b := range bookings {
		counts[b.Date]++
	}
	return counts
}

// gridRange возвращает первую и последнюю даты 42-ячеечного окна месяца
func gridRange(year int, month time.Month) (types.DateString, types.DateString) {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := gridStart.AddDate(0, 0, domain.CalendarCells-1)
	return types.NewDateString(gridStart), types.NewDateString(gridEnd)
}
