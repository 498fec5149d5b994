// Package content loads the static game tables (universities, courses,
// events, reward pools, shop, mentor name pools) from embedded yaml and
// exposes the narrow query surface the engine consumes. Content is pure
// data; anything resembling behavior lives in the engine.
package content

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/baoyan-sim/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// University is one admissions target with its gaokao threshold and
// recommendation rate.
type University struct {
	Name        string   `yaml:"name"`
	MinScore    int      `yaml:"min_score"`
	Tier        string   `yaml:"tier"` // T0 (top) .. T5
	Tags        []string `yaml:"tags"`
	BaoyanRate  float64  `yaml:"baoyan_rate"` // percent
	Description string   `yaml:"description"`
}

// Major is a selectable degree program.
type Major struct {
	Name        string           `yaml:"name"`
	Type        models.MajorType `yaml:"type"`
	Description string           `yaml:"description"`
	Bonus       string           `yaml:"bonus"`
}

// Background is a starting archetype: stat overrides, starting money, and
// the permanent mastery-efficiency baseline.
type Background struct {
	Name              string             `yaml:"name"`
	Description       string             `yaml:"description"`
	Stats             models.PlayerStats `yaml:"stats"`
	Money             int                `yaml:"money"`
	MasteryEfficiency float64            `yaml:"mastery_efficiency"`
}

// ShopEffectKind tags what a shop item does when consumed.
type ShopEffectKind string

const (
	ShopEffectStats      ShopEffectKind = "stats"      // flat stat refill
	ShopEffectEfficiency ShopEffectKind = "efficiency" // single-week multiplier boost
	ShopEffectResume     ShopEffectKind = "resume"     // random gray-market resume item
)

// ShopEffect is the data-only description of a shop item's effect.
type ShopEffect struct {
	Kind    ShopEffectKind  `yaml:"kind"`
	Stamina float64         `yaml:"stamina,omitempty"`
	Mental  float64         `yaml:"mental,omitempty"`
	Boost   float64         `yaml:"boost,omitempty"` // added to all three efficiencies
	Score   models.IntRange `yaml:"score,omitempty"` // resume item score range
	Names   []string        `yaml:"names,omitempty"` // resume item name pool
}

// ShopItem is one purchasable. Limit 0 means unlimited per week.
type ShopItem struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Cost        int        `yaml:"cost"`
	Limit       int        `yaml:"limit"`
	Effect      ShopEffect `yaml:"effect"`
}

// ResumePoolEntry is one reward the drop system can mint.
type ResumePoolEntry struct {
	Name       string               `yaml:"name"`
	Quality    models.ResumeQuality `yaml:"quality"`
	ScoreRange models.IntRange      `yaml:"score_range"`
}

// MentorPool holds the generators for random mentors of one major type.
type MentorPool struct {
	Schools []string `yaml:"schools"`
	Fields  []string `yaml:"fields"`
}

// MentorNames are the shared name fragments for mentor generation.
type MentorNames struct {
	LastNames  []string `yaml:"last_names"`
	FirstNames []string `yaml:"first_names"`
	Titles     []string `yaml:"titles"`
}

// ActionSet is the weekly action catalog: a base list plus per-major extras.
type ActionSet struct {
	Base  []models.Action                     `yaml:"base"`
	Major map[models.MajorType][]models.Action `yaml:"major"`
}

// Library is the full loaded content set.
type Library struct {
	Universities  []University
	Majors        []Major
	Backgrounds   []Background
	Courses       []models.Course
	Actions       ActionSet
	Events        []models.GameEvent
	Questions     []models.InterviewQuestion
	Shop          []ShopItem
	ResearchPool  []ResumePoolEntry
	CompetePool   []ResumePoolEntry
	Names         MentorNames
	MentorPools   map[models.MajorType]MentorPool
	SemesterNames []string
	Quotes        []string
}

func loadFile(name string, out any) error {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Load parses every embedded table and returns the library.
func Load() (*Library, error) {
	lib := &Library{}

	if err := loadFile("universities.yaml", &lib.Universities); err != nil {
		return nil, err
	}
	if err := loadFile("majors.yaml", &lib.Majors); err != nil {
		return nil, err
	}
	if err := loadFile("backgrounds.yaml", &lib.Backgrounds); err != nil {
		return nil, err
	}
	if err := loadFile("courses.yaml", &lib.Courses); err != nil {
		return nil, err
	}
	if err := loadFile("actions.yaml", &lib.Actions); err != nil {
		return nil, err
	}
	if err := loadFile("events.yaml", &lib.Events); err != nil {
		return nil, err
	}
	if err := loadFile("interview.yaml", &lib.Questions); err != nil {
		return nil, err
	}
	if err := loadFile("shop.yaml", &lib.Shop); err != nil {
		return nil, err
	}

	var pools struct {
		Research    []ResumePoolEntry `yaml:"research"`
		Competition []ResumePoolEntry `yaml:"competition"`
	}
	if err := loadFile("resume_pool.yaml", &pools); err != nil {
		return nil, err
	}
	lib.ResearchPool = pools.Research
	lib.CompetePool = pools.Competition

	var mentors struct {
		Names MentorNames                          `yaml:"names"`
		Pools map[models.MajorType]MentorPool      `yaml:"pools"`
	}
	if err := loadFile("mentors.yaml", &mentors); err != nil {
		return nil, err
	}
	lib.Names = mentors.Names
	lib.MentorPools = mentors.Pools

	var misc struct {
		SemesterNames []string `yaml:"semester_names"`
		Quotes        []string `yaml:"quotes"`
	}
	if err := loadFile("misc.yaml", &misc); err != nil {
		return nil, err
	}
	lib.SemesterNames = misc.SemesterNames
	lib.Quotes = misc.Quotes

	return lib, nil
}

// CoursesFor returns the compulsory schedule for a major and semester.
// Majors with no dedicated compulsory courses fall back to the general
// compulsory set for that semester.
func (l *Library) CoursesFor(major models.MajorType, semester int) []models.Course {
	var out []models.Course
	for _, c := range l.Courses {
		if c.Semester == semester && c.Type == models.CourseCompulsory && c.OpenTo(major) && len(c.MajorRestriction) > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		for _, c := range l.Courses {
			if c.Semester == semester && c.Type == models.CourseCompulsory && len(c.MajorRestriction) == 0 {
				out = append(out, c)
			}
		}
	}
	return out
}

// ElectivesFor returns the elective and general courses a player may add
// for a semester.
func (l *Library) ElectivesFor(major models.MajorType, semester int) []models.Course {
	var out []models.Course
	for _, c := range l.Courses {
		if c.Semester == semester && c.Type != models.CourseCompulsory && c.OpenTo(major) {
			out = append(out, c)
		}
	}
	return out
}

// CourseByID finds a course template by id.
func (l *Library) CourseByID(id string) (models.Course, bool) {
	for _, c := range l.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// UniversitiesAbove lists universities whose threshold is within reach of
// the score plus the reach margin used by the selection screen.
func (l *Library) UniversitiesAbove(score int) []University {
	var out []University
	for _, u := range l.Universities {
		if score >= u.MinScore-10 {
			out = append(out, u)
		}
	}
	return out
}

// UniversityByName resolves a university, second result false if unknown.
func (l *Library) UniversityByName(name string) (University, bool) {
	for _, u := range l.Universities {
		if u.Name == name {
			return u, true
		}
	}
	return University{}, false
}

// MajorByName resolves a major by display name.
func (l *Library) MajorByName(name string) (Major, bool) {
	for _, m := range l.Majors {
		if m.Name == name {
			return m, true
		}
	}
	return Major{}, false
}

// BackgroundByName resolves a starting background.
func (l *Library) BackgroundByName(name string) (Background, bool) {
	for _, b := range l.Backgrounds {
		if b.Name == name {
			return b, true
		}
	}
	return Background{}, false
}

// EventsFor filters the event deck by major.
func (l *Library) EventsFor(major models.MajorType) []models.GameEvent {
	var out []models.GameEvent
	for _, e := range l.Events {
		if e.AppliesTo(major) {
			out = append(out, e)
		}
	}
	return out
}

// ResumePoolFor returns the reward pool for one type and quality tier.
func (l *Library) ResumePoolFor(itemType string, quality models.ResumeQuality) []ResumePoolEntry {
	pool := l.ResearchPool
	if itemType == "competition" {
		pool = l.CompetePool
	}
	var out []ResumePoolEntry
	for _, e := range pool {
		if e.Quality == quality {
			out = append(out, e)
		}
	}
	return out
}

// ActionsFor returns the weekly action catalog for a major.
func (l *Library) ActionsFor(major models.MajorType) []models.Action {
	out := append([]models.Action(nil), l.Actions.Base...)
	out = append(out, l.Actions.Major[major]...)
	return out
}

// ActionByName resolves an action from the catalog for a major.
func (l *Library) ActionByName(major models.MajorType, name string) (models.Action, bool) {
	for _, a := range l.ActionsFor(major) {
		if a.Name == name {
			return a, true
		}
	}
	return models.Action{}, false
}

// ShopItemByName resolves a shop item.
func (l *Library) ShopItemByName(name string) (ShopItem, bool) {
	for _, item := range l.Shop {
		if item.Name == name {
			return item, true
		}
	}
	return ShopItem{}, false
}

// SemesterName returns the display name for a 1-based semester index.
func (l *Library) SemesterName(semester int) string {
	if semester < 1 || semester > len(l.SemesterNames) {
		return fmt.Sprintf("第%d学期", semester)
	}
	return l.SemesterNames[semester-1]
}

// TierValue maps a tier label to its numeric rank, T0 highest (6) down to
// T5 (1). Unknown tiers rank lowest.
func TierValue(tier string) int {
	switch tier {
	case "T0":
		return 6
	case "T1":
		return 5
	case "T2":
		return 4
	case "T3":
		return 3
	case "T4":
		return 2
	case "T5":
		return 1
	default:
		return 1
	}
}
