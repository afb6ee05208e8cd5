package db_models

type State struct {
	BaseModel
	Name      string   `gorm:"type:varchar(100);not null"`
	CountryID uint     `gorm:"index;not null"`
	Country   *Country `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (State) TableName() string {
	return "states"
}
