package domain

import "time"

// ContactMessage maps the legacy `mensajes_contacto` table. Rows are created
// by storefront visitors and only ever mutated by marking them read.
type ContactMessage struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:nombre;type:text;not null"`
	Email     string    `gorm:"column:email;type:text;not null"`
	Phone     *string   `gorm:"column:telefono;type:text"`
	Message   string    `gorm:"column:mensaje;type:text;not null"`
	Read      bool      `gorm:"column:leido;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (ContactMessage) TableName() string { return "mensajes_contacto" }

// DailyStatistic maps the legacy `estadisticas` table: one row per calendar
// date (YYYY-MM-DD, local time). The mensajes column exists in the legacy
// schema but is written as zero and never read.
type DailyStatistic struct {
	Date     string `gorm:"column:fecha;primaryKey"`
	Visits   int64  `gorm:"column:visitas;not null;default:0"`
	Messages int64  `gorm:"column:mensajes;not null;default:0"`
}

func (DailyStatistic) TableName() string { return "estadisticas" }

// DateLayout is the calendar-day key format used by estadisticas.fecha.
const DateLayout = "2006-01-02"
