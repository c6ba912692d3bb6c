package model

type DepartmentModel struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(50);not null" json:"name"`

	SchoolID int          `gorm:"column:school_id;not null;index" json:"school_id"`
	School   *SchoolModel `gorm:"foreignKey:SchoolID;references:ID" json:"school,omitempty"`

	Students []StudentModel `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"students,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
