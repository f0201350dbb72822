package repository

import (
	"context"
	"fmt"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

// DefaultSkills is the catalog every store starts with, in id order.
var DefaultSkills = []string{
	"Web Development", "UI/UX Design", "Graphic Design", "JavaScript", "React",
	"Node.js", "Python", "Content Writing", "Social Media", "SEO", "Marketing",
	"Copywriting", "Data Analysis", "Figma", "Adobe XD", "MongoDB", "Flutter",
	"Mobile Development", "CSS", "HTML", "Tailwind CSS", "TypeScript",
}

// SeedSkills inserts DefaultSkills, skipping names that already exist.
func SeedSkills(ctx context.Context, skills SkillRepository) error {
	for _, name := range DefaultSkills {
		s := models.Skill{Name: name}
		if err := skills.Create(ctx, &s); err != nil && !appErr.IsCode(err, appErr.CodeConflict) {
			return err
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

// SeedDemoUsers creates the two accounts the web client signs in as:
// student_demo and recruiter_demo. On a fresh store they get ids 1 and 2.
func SeedDemoUsers(ctx context.Context, s *Store) error {
	student := models.User{
		Username:       "student_demo",
		Password:       "password",
		Role:           models.RoleStudent,
		Name:           "John Doe",
		Email:          "john.doe@university.edu",
		About:          strPtr("Junior CS major with a passion for frontend development. Looking for opportunities to build real-world applications."),
		University:     strPtr("Boston University"),
		Major:          strPtr("Computer Science"),
		GraduationYear: strPtr("2025"),
	}
	recruiter := models.User{
		Username: "recruiter_demo",
		Password: "password",
		Role:     models.RoleRecruiter,
		Name:     "Campus Startup",
		Email:    "contact@campusstartup.com",
		About:    strPtr("Campus startup looking for talented students to help build our platform."),
		Company:  strPtr("Campus Startup"),
		Location: strPtr("Boston University"),
	}
	for _, u := range []*models.User{&student, &recruiter} {
		if err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	for _, name := range []string{"Web Development", "JavaScript", "React"} {
		var skill models.Skill
		if err := s.skills.GetByName(ctx, name, &skill); err != nil {
			return fmt.Errorf("seed skill %s: %w", name, err)
		}
		if _, err := s.userSkills.Add(ctx, student.ID, skill.ID); err != nil && !appErr.IsCode(err, appErr.CodeAlreadyExists) {
			return err
		}
	}
	return nil
}
