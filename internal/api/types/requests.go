package types

import (
	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/services"
)

type CreateUserRequest struct {
	Username       string  `json:"username" validate:"required"`
	Password       string  `json:"password" validate:"required"`
	Role           string  `json:"role" validate:"required,oneof=student recruiter"`
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Photo          *string `json:"photo"`
	About          *string `json:"about"`
	University     *string `json:"university"`
	Major          *string `json:"major"`
	GraduationYear *string `json:"graduationYear"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
}

func (r *CreateUserRequest) Input() *services.CreateUserInput {
	return &services.CreateUserInput{
		Username:       r.Username,
		Password:       r.Password,
		Role:           models.Role(r.Role),
		Name:           r.Name,
		Email:          r.Email,
		Photo:          r.Photo,
		About:          r.About,
		University:     r.University,
		Major:          r.Major,
		GraduationYear: r.GraduationYear,
		Company:        r.Company,
		Location:       r.Location,
	}
}

// UpdateUserRequest is a partial CreateUserRequest; absent fields are left alone.
type UpdateUserRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=1"`
	Password       *string `json:"password" validate:"omitempty,min=1"`
	Role           *string `json:"role" validate:"omitempty,oneof=student recruiter"`
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Photo          *string `json:"photo"`
	About          *string `json:"about"`
	University     *string `json:"university"`
	Major          *string `json:"major"`
	GraduationYear *string `json:"graduationYear"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
}

func (r *UpdateUserRequest) Input() *services.UpdateUserInput {
	in := &services.UpdateUserInput{
		Username:       r.Username,
		Password:       r.Password,
		Name:           r.Name,
		Email:          r.Email,
		Photo:          r.Photo,
		About:          r.About,
		University:     r.University,
		Major:          r.Major,
		GraduationYear: r.GraduationYear,
		Company:        r.Company,
		Location:       r.Location,
	}
	if r.Role != nil {
		role := models.Role(*r.Role)
		in.Role = &role
	}
	return in
}

type CreateSkillRequest struct {
	Name string `json:"name" validate:"required"`
}

type SkillIDRequest struct {
	SkillID int64 `json:"skillId" validate:"required,gt=0"`
}

type CreateGigRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	MinPrice       *int    `json:"minPrice" validate:"required,gte=0"`
	MaxPrice       *int    `json:"maxPrice" validate:"omitempty,gte=0"`
	IsPriceHourly  bool    `json:"isPriceHourly"`
	EstimatedHours *string `json:"estimatedHours"`
	RecruiterID    int64   `json:"recruiterId" validate:"required,gt=0"`
	CompanyName    string  `json:"companyName" validate:"required"`
}

func (r *CreateGigRequest) Input() *services.CreateGigInput {
	return &services.CreateGigInput{
		Title:          r.Title,
		Description:    r.Description,
		MinPrice:       *r.MinPrice,
		MaxPrice:       r.MaxPrice,
		IsPriceHourly:  r.IsPriceHourly,
		EstimatedHours: r.EstimatedHours,
		RecruiterID:    r.RecruiterID,
		CompanyName:    r.CompanyName,
	}
}

type CreateApplicationRequest struct {
	GigID       int64   `json:"gigId" validate:"required,gt=0"`
	StudentID   int64   `json:"studentId" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
	CoverLetter *string `json:"coverLetter"`
}

func (r *CreateApplicationRequest) Input() *services.ApplyInput {
	return &services.ApplyInput{
		GigID:       r.GigID,
		StudentID:   r.StudentID,
		Status:      models.ApplicationStatus(r.Status),
		CoverLetter: r.CoverLetter,
	}
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type CreateSavedItemRequest struct {
	UserID      int64  `json:"userId" validate:"required,gt=0"`
	GigID       *int64 `json:"gigId" validate:"omitempty,gt=0"`
	SavedUserID *int64 `json:"savedUserId" validate:"omitempty,gt=0"`
}

func (r *CreateSavedItemRequest) Input() *services.SaveItemInput {
	return &services.SaveItemInput{UserID: r.UserID, GigID: r.GigID, SavedUserID: r.SavedUserID}
}
