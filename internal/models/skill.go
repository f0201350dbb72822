package models

// Skill is a named tag shared by users and gigs.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Skill) Key() int64         { return s.ID }
func (s *Skill) AssignKey(id int64) { s.ID = id }

// UserSkill links a user to a skill.
type UserSkill struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"userId"`
	SkillID int64 `json:"skillId"`
}

// GigSkill links a gig to a skill.
type GigSkill struct {
	ID      int64 `json:"id"`
	GigID   int64 `json:"gigId"`
	SkillID int64 `json:"skillId"`
}
