package db_models

type District struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null"`
	StateID uint   `gorm:"index;not null"`
	State   *State `gorm:"foreignKey:StateID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (District) TableName() string {
	return "districts"
}
