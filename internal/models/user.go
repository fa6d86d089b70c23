package models

// User represents the user model in the database. Users are created lazily
// the first time a Telegram id is seen and are never deleted.
type User struct {
	Base
	TelegramID int64  `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username   string `json:"username"`

	Sources  []MoneySource `gorm:"foreignKey:UserID" json:"sources,omitempty"`
	Expenses []Expense     `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
