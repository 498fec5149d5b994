package models

// GamePhase tracks which screen of the run the player is on.
type GamePhase string

const (
	PhaseStart               GamePhase = "start"
	PhaseGaokao              GamePhase = "gaokao"
	PhaseUniversitySelection GamePhase = "university_selection"
	PhaseUniversityFailed    GamePhase = "university_failed"
	PhaseCourseSelection     GamePhase = "course_selection"
	PhaseMainGame            GamePhase = "main_game"
	PhaseSummerCamp          GamePhase = "summer_camp"
	PhasePreRecommendation   GamePhase = "pre_recommendation"
	PhaseGameOver            GamePhase = "game_over"
)

// MajorType groups majors that share courses, events, and mentor pools.
type MajorType string

const (
	MajorCS         MajorType = "cs"
	MajorBiology    MajorType = "biology"
	MajorHumanities MajorType = "humanities"
	MajorGeneral    MajorType = "general"
	MajorEE         MajorType = "ee"
	MajorMedicine   MajorType = "medicine"
	MajorLaw        MajorType = "law"
	MajorArt        MajorType = "art"
)

// PlayerStats holds the six core stats. GPA lives in [0, 4.5], everything
// else in [0, 100]. Stamina and mental are allowed to hit 0, which ends
// the run.
type PlayerStats struct {
	GPA         float64 `yaml:"gpa"`
	Research    float64 `yaml:"research"`
	Competition float64 `yaml:"competition"`
	English     float64 `yaml:"english"`
	Mental      float64 `yaml:"mental"`
	Stamina     float64 `yaml:"stamina"`
}

// Social tracks the two relationship scores, each in [0, 100].
type Social struct {
	Classmates float64 `yaml:"classmates"`
	Seniors    float64 `yaml:"seniors"`
}

// CourseType distinguishes how a course lands on the schedule.
type CourseType string

const (
	CourseCompulsory CourseType = "compulsory"
	CourseElective   CourseType = "elective"
	CourseGeneral    CourseType = "general"
)

// Course is an active course this semester. Mastery accumulates weekly and
// is thrown away with the course object at the semester boundary.
type Course struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Difficulty       int         `yaml:"difficulty"` // 1-5
	Credit           int         `yaml:"credit"`
	Type             CourseType  `yaml:"type"`
	Semester         int         `yaml:"semester"`
	MajorRestriction []MajorType `yaml:"major_restriction,omitempty"`
	Mastery          float64     `yaml:"mastery"`
	Description      string      `yaml:"description,omitempty"`
}

// OpenTo reports whether the course is open to the given major.
func (c Course) OpenTo(m MajorType) bool {
	if len(c.MajorRestriction) == 0 {
		return true
	}
	for _, r := range c.MajorRestriction {
		if r == m {
			return true
		}
	}
	return false
}

// ExamResult is one course's line on a report card.
type ExamResult struct {
	CourseName string  `yaml:"course_name"`
	Score      int     `yaml:"score"`
	Grade      string  `yaml:"grade"`
	GradePoint float64 `yaml:"grade_point"`
	Credit     int     `yaml:"credit"`
}

// ExamReport is the report card shown after an exam week. Midterms carry
// PrevGPA == NewGPA; only finals move the cumulative GPA.
type ExamReport struct {
	Results      []ExamResult `yaml:"results"`
	PrevGPA      float64      `yaml:"prev_gpa"`
	NewGPA       float64      `yaml:"new_gpa"`
	SemesterName string       `yaml:"semester_name"`
	Midterm      bool         `yaml:"midterm"`
}

// MentorStatus is the courtship state for one mentor.
type MentorStatus string

const (
	MentorNone        MentorStatus = "none"
	MentorContacting  MentorStatus = "contacting"
	MentorFishPond    MentorStatus = "fish_pond"
	MentorVerbalOffer MentorStatus = "verbal_offer"
	MentorHardOffer   MentorStatus = "hard_offer"
	MentorRejected    MentorStatus = "rejected"
)

// Mentor is a prospective advisor. Reputation is fixed at generation;
// friendship and status move over the run.
type Mentor struct {
	ID            string       `yaml:"id"`
	Name          string       `yaml:"name"`
	Title         string       `yaml:"title"`
	Reputation    int          `yaml:"reputation"` // 0-100, immutable
	Friendship    int          `yaml:"friendship"` // 0-100
	University    string       `yaml:"university"`
	School        string       `yaml:"school"`
	ResearchField string       `yaml:"research_field"`
	Status        MentorStatus `yaml:"status"`
}

// ResumeQuality is the rarity tier of a resume item.
type ResumeQuality string

const (
	QualityCommon    ResumeQuality = "common"
	QualityRare      ResumeQuality = "rare"
	QualityEpic      ResumeQuality = "epic"
	QualityLegendary ResumeQuality = "legendary"
)

// ResumeItem is a permanent resume entry. Items are only ever appended.
type ResumeItem struct {
	ID      string        `yaml:"id"`
	Type    string        `yaml:"type"` // "research" or "competition"
	Name    string        `yaml:"name"`
	Score   int           `yaml:"score"`
	Quality ResumeQuality `yaml:"quality"`
}

// ApplicationStatus is the admissions state of one application.
type ApplicationStatus string

const (
	ApplicationPending      ApplicationStatus = "pending"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationAccepted     ApplicationStatus = "accepted"
	ApplicationRejected     ApplicationStatus = "rejected"
	// ApplicationWaitlist is declared for completeness; initial screening
	// currently resolves straight to interviewing or rejected and no code
	// path assigns it.
	ApplicationWaitlist ApplicationStatus = "waitlist"
)

// ApplicationPhase is the admissions window an application belongs to.
type ApplicationPhase string

const (
	WindowSummerCamp        ApplicationPhase = "summer_camp"
	WindowPreRecommendation ApplicationPhase = "pre_recommendation"
)

// Application records one submission. At most one exists per
// (university, phase) pair.
type Application struct {
	University string            `yaml:"university"`
	Major      string            `yaml:"major"`
	Status     ApplicationStatus `yaml:"status"`
	Phase      ApplicationPhase  `yaml:"phase"`
}

// InterviewOption is one way to answer an interview question.
type InterviewOption struct {
	Text     string `yaml:"text"`
	Score    int    `yaml:"score"`
	Feedback string `yaml:"feedback"`
}

// InterviewQuestion is one question from the shared interview pool.
type InterviewQuestion struct {
	ID      string            `yaml:"id"`
	Text    string            `yaml:"text"`
	Options []InterviewOption `yaml:"options"`
}

// Interview is the in-flight interview for one application. It is dropped
// once the last question resolves.
type Interview struct {
	University      string              `yaml:"university"`
	Major           string              `yaml:"major"`
	Phase           ApplicationPhase    `yaml:"phase"`
	Questions       []InterviewQuestion `yaml:"questions"`
	QuestionIndex   int                 `yaml:"question_index"`
	TotalScore      int                 `yaml:"total_score"`
	BackgroundScore float64             `yaml:"background_score"` // out of 60, fixed at screening time
}

// EventEffect is a data-only effect descriptor: stat deltas, a money delta,
// and the log line to show. Content tables never carry code.
type EventEffect struct {
	GPA         float64 `yaml:"gpa,omitempty"`
	Research    float64 `yaml:"research,omitempty"`
	Competition float64 `yaml:"competition,omitempty"`
	English     float64 `yaml:"english,omitempty"`
	Mental      float64 `yaml:"mental,omitempty"`
	Stamina     float64 `yaml:"stamina,omitempty"`
	Money       int     `yaml:"money,omitempty"`
	Log         string  `yaml:"log"`
}

// EventOption is one choice on a random event.
type EventOption struct {
	Text   string      `yaml:"text"`
	Effect EventEffect `yaml:"effect"`
}

// GameEvent is a random weekly event, optionally restricted to majors.
type GameEvent struct {
	Title            string        `yaml:"title"`
	Description      string        `yaml:"description"`
	Options          []EventOption `yaml:"options"`
	MajorRestriction []MajorType   `yaml:"major_restriction,omitempty"`
}

// AppliesTo reports whether the event can fire for the given major.
func (e GameEvent) AppliesTo(m MajorType) bool {
	if len(e.MajorRestriction) == 0 {
		return true
	}
	for _, r := range e.MajorRestriction {
		if r == m {
			return true
		}
	}
	return false
}

// StatDelta is the cost or gain side of an action descriptor. Mastery is a
// pool distributed across active courses rather than a direct stat.
type StatDelta struct {
	GPA         float64 `yaml:"gpa,omitempty"`
	Research    float64 `yaml:"research,omitempty"`
	Competition float64 `yaml:"competition,omitempty"`
	English     float64 `yaml:"english,omitempty"`
	Mental      float64 `yaml:"mental,omitempty"`
	Stamina     float64 `yaml:"stamina,omitempty"`
	Mastery     float64 `yaml:"mastery,omitempty"`
	Money       int     `yaml:"money,omitempty"`
}

// SocialDelta is the social side-gain of an action.
type SocialDelta struct {
	Classmates float64 `yaml:"classmates,omitempty"`
	Seniors    float64 `yaml:"seniors,omitempty"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Action is one selectable weekly plan. Bonus, when set, pays an extra
// uniformly random amount of money on top of the declared gain.
type Action struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Cost        StatDelta    `yaml:"cost"`
	Gain        StatDelta    `yaml:"gain"`
	SocialGain  *SocialDelta `yaml:"social_gain,omitempty"`
	Bonus       *IntRange    `yaml:"bonus,omitempty"`
}

// WeekSummary aggregates what one settled week produced, for display.
type WeekSummary struct {
	Gains map[string]float64 `yaml:"gains"`
	Logs  []string           `yaml:"logs"`
}

// CareerStats is the numbers panel of the ending report.
type CareerStats struct {
	FinalGPA         float64 `yaml:"final_gpa"`
	TotalResumeScore int     `yaml:"total_resume_score"`
	FinalEnglish     float64 `yaml:"final_english"`
	FinalSocial      float64 `yaml:"final_social"`
	FinalMoney       int     `yaml:"final_money"`
}

// FunnelStats counts one application window's funnel.
type FunnelStats struct {
	Applied    int `yaml:"applied"`
	Interviews int `yaml:"interviews"`
	Offers     int `yaml:"offers"`
}

// Ending is the final outcome report.
type Ending struct {
	Title      string      `yaml:"title"`
	Detail     string      `yaml:"detail"`
	Quote      string      `yaml:"quote"`
	Career     CareerStats `yaml:"career"`
	SummerCamp FunnelStats `yaml:"summer_camp"`
	PreRec     FunnelStats `yaml:"pre_rec"`
}

// GameState is the whole run. Transitions never mutate a GameState in
// place; the engine clones it and returns the successor.
type GameState struct {
	Phase    GamePhase `yaml:"phase"`
	Semester int       `yaml:"semester"` // 1-7 playable, 8 = overflow
	Week     int       `yaml:"week"`     // 1-18
	Money    int       `yaml:"money"`

	Stats  PlayerStats  `yaml:"stats"`
	Social Social       `yaml:"social"`
	Resume []ResumeItem `yaml:"resume"`

	// Weekly efficiency multipliers. Research/competition reset to 1.0
	// every week; mastery resets to BaseMasteryEfficiency (the background
	// bonus is permanent, shop boosts are single-week).
	MasteryEfficiency     float64 `yaml:"mastery_efficiency"`
	BaseMasteryEfficiency float64 `yaml:"base_mastery_efficiency"`
	ResearchEfficiency    float64 `yaml:"research_efficiency"`
	CompetitionEfficiency float64 `yaml:"competition_efficiency"`

	Background       string    `yaml:"background"`
	GaokaoScore      int       `yaml:"gaokao_score"`
	University       string    `yaml:"university"`
	Major            string    `yaml:"major"`
	MajorType        MajorType `yaml:"major_type"`
	FailedUniversity string    `yaml:"failed_university,omitempty"`
	RejectionCount   int       `yaml:"rejection_count"`

	Courses          []Course `yaml:"courses"`
	Mentors          []Mentor `yaml:"mentors"`
	PotentialMentors []Mentor `yaml:"potential_mentors"`

	Applications []Application `yaml:"applications"`
	Interview    *Interview    `yaml:"interview,omitempty"`
	CurrentEvent *GameEvent    `yaml:"current_event,omitempty"`

	SelectedActions []string       `yaml:"selected_actions"`
	PurchaseCounts  map[string]int `yaml:"purchase_counts"`

	ExamReport  *ExamReport `yaml:"exam_report,omitempty"`
	WeekSummary WeekSummary `yaml:"week_summary"`

	GameOver    bool    `yaml:"game_over"`
	GameMessage string  `yaml:"game_message,omitempty"`
	Ending      *Ending `yaml:"ending,omitempty"`
}

// ResumeScore sums all resume item scores.
func (s *GameState) ResumeScore() int {
	total := 0
	for _, item := range s.Resume {
		total += item.Score
	}
	return total
}

// MentorByID finds an engaged mentor, or nil.
func (s *GameState) MentorByID(id string) *Mentor {
	for i := range s.Mentors {
		if s.Mentors[i].ID == id {
			return &s.Mentors[i]
		}
	}
	return nil
}

// HasApplied reports whether an application already exists for the
// university in the given window.
func (s *GameState) HasApplied(university string, phase ApplicationPhase) bool {
	for _, app := range s.Applications {
		if app.University == university && app.Phase == phase {
			return true
		}
	}
	return false
}

// Clone deep-copies the state so transitions can build a successor without
// touching the caller's snapshot.
func (s GameState) Clone() GameState {
	out := s
	out.Resume = append([]ResumeItem(nil), s.Resume...)
	out.Courses = append([]Course(nil), s.Courses...)
	out.Mentors = append([]Mentor(nil), s.Mentors...)
	out.PotentialMentors = append([]Mentor(nil), s.PotentialMentors...)
	out.Applications = append([]Application(nil), s.Applications...)
	out.SelectedActions = append([]string(nil), s.SelectedActions...)
	if s.PurchaseCounts != nil {
		out.PurchaseCounts = make(map[string]int, len(s.PurchaseCounts))
		for k, v := range s.PurchaseCounts {
			out.PurchaseCounts[k] = v
		}
	}
	if s.Interview != nil {
		iv := *s.Interview
		iv.Questions = append([]InterviewQuestion(nil), s.Interview.Questions...)
		out.Interview = &iv
	}
	if s.CurrentEvent != nil {
		ev := *s.CurrentEvent
		ev.Options = append([]EventOption(nil), s.CurrentEvent.Options...)
		out.CurrentEvent = &ev
	}
	if s.ExamReport != nil {
		rep := *s.ExamReport
		rep.Results = append([]ExamResult(nil), s.ExamReport.Results...)
		out.ExamReport = &rep
	}
	if s.WeekSummary.Gains != nil {
		out.WeekSummary.Gains = make(map[string]float64, len(s.WeekSummary.Gains))
		for k, v := range s.WeekSummary.Gains {
			out.WeekSummary.Gains[k] = v
		}
	}
	out.WeekSummary.Logs = append([]string(nil), s.WeekSummary.Logs...)
	if s.Ending != nil {
		end := *s.Ending
		out.Ending = &end
	}
	return out
}

// NewGameState builds the pre-gaokao starting state.
func NewGameState() GameState {
	return GameState{
		Phase:                 PhaseStart,
		Semester:              0,
		Week:                  1,
		Money:                 1000,
		Stats:                 PlayerStats{English: 40, Mental: 80, Stamina: 100},
		MasteryEfficiency:     1.0,
		BaseMasteryEfficiency: 1.0,
		ResearchEfficiency:    1.0,
		CompetitionEfficiency: 1.0,
		MajorType:             MajorGeneral,
		PurchaseCounts:        map[string]int{},
		WeekSummary:           WeekSummary{Gains: map[string]float64{}},
	}
}
