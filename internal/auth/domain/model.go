package domain

import "time"

// AdminUser maps the legacy `usuarios_admin` table. The password_hash column
// kept its name from the legacy schema; it now holds an argon2id hash, never
// a cleartext credential.
type AdminUser struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"column:username;type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	Name         *string   `gorm:"column:nombre;type:text"`
	Email        *string   `gorm:"column:email;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (AdminUser) TableName() string { return "usuarios_admin" }

// Session is a server-side admin session. Only the sha256 of the opaque
// token is stored.
type Session struct {
	ID               int64      `gorm:"primaryKey"`
	UserID           int64      `gorm:"column:usuario_id;not null;index"`
	SessionTokenHash string     `gorm:"column:token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string     `gorm:"column:user_agent;type:text"`
	IPAddress        string     `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time  `gorm:"column:expires_at;not null"`
	RevokedAt        *time.Time `gorm:"column:revoked_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"`
	LastSeenAt       time.Time  `gorm:"column:last_seen_at;not null"`
}

func (Session) TableName() string { return "sesiones_admin" }
