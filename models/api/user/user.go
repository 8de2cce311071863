package userapimodels

type UpdateUserRequest struct {
	Name         *string `json:"name"`
	DepartmentID *string `json:"departmentId"`
	Password     *string `json:"password"`
	ClearDept    bool    `json:"clearDepartment"`
}
