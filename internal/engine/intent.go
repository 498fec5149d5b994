package engine

// Intent is a single player input. Every variant maps to exactly one
// state transition in Engine.Apply.
type Intent interface {
	isIntent()
}

// StartGame picks a background and rolls the gaokao score.
type StartGame struct {
	Background string
}

// SelectUniversity commits to a university. Reach schools (score below
// threshold) trigger a probability roll that may bounce the player to the
// failed screen with a fresh score.
type SelectUniversity struct {
	University string
}

// SelectMajor locks the major and loads the first semester's compulsory
// courses.
type SelectMajor struct {
	Major string
}

// ConfirmCourses adds the chosen electives to the compulsory schedule and
// starts the semester.
type ConfirmCourses struct {
	CourseIDs []string
}

// ToggleAction selects or deselects one weekly action.
type ToggleAction struct {
	Action string
}

// AdvanceWeek settles the selected actions and ticks the scheduler.
type AdvanceWeek struct{}

// BuyItem purchases one shop item.
type BuyItem struct {
	Item string
}

// RefreshMentors regenerates the potential mentor list.
type RefreshMentors struct{}

// ContactMentor engages a potential mentor (none -> contacting).
type ContactMentor struct {
	MentorID string
}

// CourtMentor performs a courtship roll on an engaged mentor.
type CourtMentor struct {
	MentorID string
}

// DeepenMentor is the no-failure interaction available once engaged:
// friendship up, a reputation-scaled research bump, stamina down.
type DeepenMentor struct {
	MentorID string
}

// SubmitApplication applies to a university in the current admissions
// window.
type SubmitApplication struct {
	University string
}

// AnswerInterview answers the current interview question by option index.
type AnswerInterview struct {
	Option int
}

// ChooseEventOption resolves the pending random event.
type ChooseEventOption struct {
	Option int
}

// DismissReport clears the exam report overlay.
type DismissReport struct{}

// Debug skips, gated behind BAOYAN_DEBUG by the front end.
type SkipToSummerCamp struct{}
type SkipToPreRecommendation struct{}
type SkipToGameOver struct{}

func (StartGame) isIntent()               {}
func (SelectUniversity) isIntent()        {}
func (SelectMajor) isIntent()             {}
func (ConfirmCourses) isIntent()          {}
func (ToggleAction) isIntent()            {}
func (AdvanceWeek) isIntent()             {}
func (BuyItem) isIntent()                 {}
func (RefreshMentors) isIntent()          {}
func (ContactMentor) isIntent()           {}
func (CourtMentor) isIntent()             {}
func (DeepenMentor) isIntent()            {}
func (SubmitApplication) isIntent()       {}
func (AnswerInterview) isIntent()         {}
func (ChooseEventOption) isIntent()       {}
func (DismissReport) isIntent()           {}
func (SkipToSummerCamp) isIntent()        {}
func (SkipToPreRecommendation) isIntent() {}
func (SkipToGameOver) isIntent()          {}
