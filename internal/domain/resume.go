package domain

// Resume content types mirror the structure of data/resume.json. Only the
// fields the pages render are modeled.

type ProfileLinks struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Profile struct {
	Name     string       `json:"name" validate:"required"`
	Headline string       `json:"headline"`
	Location string       `json:"location"`
	Summary  string       `json:"summary"`
	Links    ProfileLinks `json:"links"`
}

// Skills groups skill names by category. Category iteration order follows
// SkillCategories so the page layout is stable.
type Skills map[string][]string

// SkillCategories is the display order for skill groups.
var SkillCategories = []string{"languages", "frameworks", "cloud", "data", "practices", "tools"}

// Skill is a single flattened skill with its category.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ExperienceRole struct {
	Title   string   `json:"title"`
	Start   string   `json:"start"`
	End     string   `json:"end,omitempty"`
	Bullets []string `json:"bullets"`
	Tech    []string `json:"tech"`
}

type Experience struct {
	Company  string           `json:"company"`
	Location string           `json:"location"`
	Roles    []ExperienceRole `json:"roles"`
}

type Project struct {
	Name    string            `json:"name" validate:"required"`
	Slug    string            `json:"slug" validate:"required"`
	Summary string            `json:"summary"`
	Role    string            `json:"role"`
	Dates   string            `json:"dates"`
	Impact  []string          `json:"impact"`
	Tech    []string          `json:"tech"`
	Links   map[string]string `json:"links"`
	Images  []string          `json:"images"`
}

type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Minor  string `json:"minor,omitempty"`
	Year   string `json:"year"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url,omitempty"`
}

type Award struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type Resume struct {
	Profile        Profile         `json:"profile"`
	Skills         Skills          `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects" validate:"dive"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Interests      []string        `json:"interests"`
}

// ResumeRepository is the content store supplying the resume record.
type ResumeRepository interface {
	Get() (*Resume, error)
}

// ResumeUsecase defines the read operations the pages need.
type ResumeUsecase interface {
	GetResume() (*Resume, error)
	GetProjectBySlug(slug string) (*Project, error)
	GetProjectsByTech(tech string) ([]Project, error)
	GetAllSkills() ([]Skill, error)
}
