package db_models

// BaseModel carries the surrogate key and unix-second timestamps shared by
// every catalog table. gorm fills the timestamps on insert and update.
type BaseModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	CreatedAt int64 `gorm:"autoCreateTime;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime;not null"`
}
