package dto

type CreateSkillCategoryRequest struct {
	Name   string   `json:"name" validate:"required,max=100"`
	Skills []string `json:"skills"`
}

type UpdateSkillCategoryRequest struct {
	Name   *string   `json:"name" validate:"omitempty,max=100"`
	Skills *[]string `json:"skills"`
}

type AddSkillRequest struct {
	Skill string `json:"skill" validate:"required,max=100"`
}
