package model

type GenderEnum string

const (
	GenderMale   GenderEnum = "Male"
	GenderFemale GenderEnum = "Female"
)

type StudentModel struct {
	ID        int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string     `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName  string     `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	Gender    GenderEnum `gorm:"column:gender;type:varchar(10);not null" json:"gender"`
	Age       int        `gorm:"column:age;not null" json:"age"`
	// unik secara aturan aplikasi, bukan constraint DB (dicek di service)
	Email string `gorm:"column:email;type:varchar(50);not null" json:"email"`

	DepartmentID int              `gorm:"column:department_id;not null;index" json:"department_id"`
	Department   *DepartmentModel `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
