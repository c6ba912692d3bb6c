package model

type SchoolModel struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(50);not null" json:"name"`

	// relasi: satu school punya banyak department
	Departments []DepartmentModel `gorm:"foreignKey:SchoolID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"departments,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
