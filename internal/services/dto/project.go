package dto

// Create and update requests for file-backed resources arrive as
// multipart forms; the file itself is read from the form separately.

type CreateProjectRequest struct {
	Title        string   `form:"title" validate:"required,max=200"`
	Description  string   `form:"description" validate:"required"`
	ProjectLink  string   `form:"projectLink" validate:"omitempty,url"`
	GithubURL    string   `form:"githubUrl" validate:"omitempty,url"`
	Technologies []string `form:"technologies"`
}

// UpdateProjectRequest uses pointers so an omitted field is left
// untouched while a provided empty value clears it.
type UpdateProjectRequest struct {
	Title        *string   `form:"title" validate:"omitempty,max=200"`
	Description  *string   `form:"description"`
	ProjectLink  *string   `form:"projectLink" validate:"omitempty,url"`
	GithubURL    *string   `form:"githubUrl" validate:"omitempty,url"`
	Technologies *[]string `form:"technologies"`
}
