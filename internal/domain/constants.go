package domain

// DateFormat формат даты расписания и записи
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Booking statuses as reported by the barbershop backend
// Статус отображается как есть, отмененные записи приглушаются на странице
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)
