// Package tui renders the game on top of bubbletea. The model holds one
// immutable engine snapshot; every key press maps to an engine intent and
// the returned successor state replaces the old one wholesale.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/engine"
	"github.com/tatianab/baoyan-sim/internal/models"
)

type pane int

const (
	paneActions pane = iota
	paneShop
	paneMentors
	paneApply
)

type model struct {
	engine *engine.Engine
	game   models.GameState
	debug  bool

	cursor   int
	pane     pane
	picked   map[string]bool // elective course ids during course selection
	viewport viewport.Model
	gameLog  string
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(eng *engine.Engine, debug bool) model {
	return model{
		engine: eng,
		game:   models.NewGameState(),
		debug:  debug,
		picked: map[string]bool{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// apply routes one intent through the engine, swaps in the successor
// state, and appends the transition log.
func (m *model) apply(intent engine.Intent) {
	prevPhase := m.game.Phase
	next, logs := m.engine.Apply(m.game, intent)
	m.game = next

	for _, line := range logs {
		m.gameLog += gameStyle.Render(line) + "\n"
	}
	if len(logs) > 0 && m.viewport.Width > 0 {
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	if m.game.Phase != prevPhase {
		m.cursor = 0
		if m.game.Phase == models.PhaseCourseSelection {
			m.picked = map[string]bool{}
		}
	}
	m.game.Save("current")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.75)
		logHeight := 8
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(logWidth, logHeight)
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = logHeight
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		if m.game.GameOver {
			return m, tea.Quit
		}
	}

	if msg.String() == "ctrl+r" {
		return NewModel(m.engine, m.debug), nil
	}

	// Overlays take the keyboard before the phase screen does.
	switch {
	case m.game.GameOver:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case m.game.ExamReport != nil:
		if msg.Type == tea.KeyEnter {
			m.apply(engine.DismissReport{})
		}
		return m, nil
	case m.game.CurrentEvent != nil:
		return m.handleList(msg, len(m.game.CurrentEvent.Options), func(mm *model, i int) {
			mm.apply(engine.ChooseEventOption{Option: i})
		})
	case m.game.Interview != nil:
		iv := m.game.Interview
		if iv.QuestionIndex < len(iv.Questions) {
			n := len(iv.Questions[iv.QuestionIndex].Options)
			return m.handleList(msg, n, func(mm *model, i int) {
				mm.apply(engine.AnswerInterview{Option: i})
				mm.cursor = 0
			})
		}
		return m, nil
	}

	switch m.game.Phase {
	case models.PhaseStart:
		return m.handleList(msg, len(m.lib().Backgrounds), func(mm *model, i int) {
			mm.apply(engine.StartGame{Background: mm.lib().Backgrounds[i].Name})
		})

	case models.PhaseGaokao, models.PhaseUniversityFailed:
		unis := m.reachableUniversities()
		return m.handleList(msg, len(unis), func(mm *model, i int) {
			mm.apply(engine.SelectUniversity{University: unis[i].Name})
		})

	case models.PhaseUniversitySelection:
		return m.handleList(msg, len(m.lib().Majors), func(mm *model, i int) {
			mm.apply(engine.SelectMajor{Major: mm.lib().Majors[i].Name})
		})

	case models.PhaseCourseSelection:
		electives := m.lib().ElectivesFor(m.game.MajorType, m.game.Semester)
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1, len(electives))
		case "down", "j":
			m.moveCursor(1, len(electives))
		case " ":
			if m.cursor < len(electives) {
				id := electives[m.cursor].ID
				m.picked[id] = !m.picked[id]
			}
		case "enter":
			var ids []string
			for _, c := range electives {
				if m.picked[c.ID] {
					ids = append(ids, c.ID)
				}
			}
			m.apply(engine.ConfirmCourses{CourseIDs: ids})
		}
		return m, nil

	case models.PhaseMainGame, models.PhaseSummerCamp, models.PhasePreRecommendation:
		return m.handleWeekly(msg)
	}
	return m, nil
}

// handleList is shared cursor navigation over a flat list with a single
// enter action.
func (m model) handleList(msg tea.KeyMsg, n int, choose func(*model, int)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, n)
	case "down", "j":
		m.moveCursor(1, n)
	case "enter", " ":
		if m.cursor < n {
			choose(&m, m.cursor)
		}
	}
	return m, nil
}

func (m *model) moveCursor(delta, n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = n - 1
	}
	if m.cursor >= n {
		m.cursor = 0
	}
}

func (m model) handleWeekly(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	panes := m.weeklyPanes()

	switch msg.String() {
	case "tab", "right", "l":
		m.pane = panes[(m.paneIndex(panes)+1)%len(panes)]
		m.cursor = 0
		return m, nil
	case "shift+tab", "left", "h":
		m.pane = panes[(m.paneIndex(panes)+len(panes)-1)%len(panes)]
		m.cursor = 0
		return m, nil
	case "w":
		m.apply(engine.AdvanceWeek{})
		return m, nil
	case "f1":
		if m.debug {
			m.apply(engine.SkipToSummerCamp{})
		}
		return m, nil
	case "f2":
		if m.debug {
			m.apply(engine.SkipToPreRecommendation{})
		}
		return m, nil
	case "f3":
		if m.debug {
			m.apply(engine.SkipToGameOver{})
		}
		return m, nil
	}

	switch m.pane {
	case paneActions:
		actions := m.lib().ActionsFor(m.game.MajorType)
		return m.handleList(msg, len(actions), func(mm *model, i int) {
			mm.apply(engine.ToggleAction{Action: actions[i].Name})
		})

	case paneShop:
		items := m.lib().Shop
		return m.handleList(msg, len(items), func(mm *model, i int) {
			mm.apply(engine.BuyItem{Item: items[i].Name})
		})

	case paneMentors:
		engaged := m.game.Mentors
		potential := m.game.PotentialMentors
		total := len(engaged) + len(potential)
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1, total)
		case "down", "j":
			m.moveCursor(1, total)
		case "r":
			m.apply(engine.RefreshMentors{})
		case "enter", " ":
			if m.cursor >= len(engaged) && m.cursor < total {
				m.apply(engine.ContactMentor{MentorID: potential[m.cursor-len(engaged)].ID})
			}
		case "c":
			if m.cursor < len(engaged) {
				m.apply(engine.CourtMentor{MentorID: engaged[m.cursor].ID})
			}
		case "d":
			if m.cursor < len(engaged) {
				m.apply(engine.DeepenMentor{MentorID: engaged[m.cursor].ID})
			}
		}
		return m, nil

	case paneApply:
		unis := m.lib().Universities
		return m.handleList(msg, len(unis), func(mm *model, i int) {
			mm.apply(engine.SubmitApplication{University: unis[i].Name})
		})
	}
	return m, nil
}

func (m model) weeklyPanes() []pane {
	panes := []pane{paneActions, paneShop, paneMentors}
	if m.game.Phase == models.PhaseSummerCamp || m.game.Phase == models.PhasePreRecommendation {
		panes = append(panes, paneApply)
	}
	return panes
}

func (m model) paneIndex(panes []pane) int {
	for i, p := range panes {
		if p == m.pane {
			return i
		}
	}
	return 0
}

func (m model) lib() *content.Library {
	return m.engine.Library()
}

// reachableUniversities lists the selection-screen targets: everything
// within reach margin of the current gaokao score.
func (m model) reachableUniversities() []content.University {
	return m.lib().UniversitiesAbove(m.game.GaokaoScore)
}

func (m model) View() string {
	var body string

	switch {
	case m.game.GameOver:
		body = m.viewEnding()
	case m.game.ExamReport != nil:
		body = m.viewExamReport()
	case m.game.CurrentEvent != nil:
		body = m.viewEvent()
	case m.game.Interview != nil:
		body = m.viewInterview()
	default:
		switch m.game.Phase {
		case models.PhaseStart:
			body = m.viewStart()
		case models.PhaseGaokao, models.PhaseUniversityFailed:
			body = m.viewUniversities()
		case models.PhaseUniversitySelection:
			body = m.viewMajors()
		case models.PhaseCourseSelection:
			body = m.viewCourses()
		default:
			body = m.viewWeekly()
		}
	}

	return "\n" + body + "\n"
}

func (m model) viewStart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("保研模拟器") + "\n\n")
	b.WriteString("选择你的出身，它决定了你的起点：\n\n")
	for i, bg := range m.lib().Backgrounds {
		line := fmt.Sprintf("%s — %s", bg.Name, bg.Description)
		b.WriteString(m.listLine(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ 选择，Enter 确认，Ctrl+C 退出"))
	return b.String()
}

func (m model) viewUniversities() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("高考放榜") + "\n\n")
	if m.game.Phase == models.PhaseUniversityFailed {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("冲刺 %s 失败！重新估分：%d 分。", m.game.FailedUniversity, m.game.GaokaoScore)) + "\n\n")
	} else {
		b.WriteString(fmt.Sprintf("你的高考成绩：%s\n\n", cursorStyle.Render(fmt.Sprintf(" %d 分 ", m.game.GaokaoScore))))
	}
	for i, u := range m.reachableUniversities() {
		marker := ""
		if m.game.GaokaoScore < u.MinScore {
			marker = dangerStyle.Render(" [冲刺]")
		}
		line := fmt.Sprintf("%s (%s, 最低 %d 分, 保研率 %.0f%%)%s", u.Name, u.Tier, u.MinScore, u.BaoyanRate, marker)
		b.WriteString(m.listLine(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ 选择学校，Enter 确认。冲刺分数不够的学校有失败风险。"))
	return b.String()
}

func (m model) viewMajors() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("专业选择") + "\n\n")
	b.WriteString(fmt.Sprintf("你已被 %s 录取，请选择专业：\n\n", m.game.University))
	for i, mj := range m.lib().Majors {
		line := fmt.Sprintf("%s — %s", mj.Name, mj.Description)
		if mj.Bonus != "" {
			line += dimStyle.Render("（" + mj.Bonus + "）")
		}
		b.WriteString(m.listLine(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ 选择，Enter 确认"))
	return b.String()
}

func (m model) viewCourses() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.lib().SemesterName(m.game.Semester)+" 选课") + "\n\n")

	b.WriteString(dimStyle.Render("必修课（已自动加入）：") + "\n")
	for _, c := range m.game.Courses {
		b.WriteString(fmt.Sprintf("  %s (难度%d, %d学分)\n", c.Name, c.Difficulty, c.Credit))
	}

	electives := m.lib().ElectivesFor(m.game.MajorType, m.game.Semester)
	b.WriteString("\n选修与通识课：\n")
	if len(electives) == 0 {
		b.WriteString(dimStyle.Render("  本学期没有可选课程。") + "\n")
	}
	for i, c := range electives {
		box := "[ ]"
		if m.picked[c.ID] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s (难度%d, %d学分)", box, c.Name, c.Difficulty, c.Credit)
		b.WriteString(m.listLine(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("空格 勾选，Enter 确认并开始学期"))
	return b.String()
}

func (m model) viewWeekly() string {
	left := m.viewPane()
	right := m.renderState()

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	logView := ""
	if m.viewport.Width > 0 {
		logView = m.viewport.View()
	}

	help := helpStyle.Render("Tab 切换面板 | ↑/↓ 光标 | Enter/空格 选择 | w 结束本周 | Ctrl+C 退出")
	if m.debug {
		help += helpStyle.Render("  [调试: F1 夏令营 F2 预推免 F3 结局]")
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainView, "\n"+logView, help)
}

func (m model) viewPane() string {
	var b strings.Builder

	panes := m.weeklyPanes()
	labels := map[pane]string{
		paneActions: "每周计划",
		paneShop:    "小卖部",
		paneMentors: "导师",
		paneApply:   "申请",
	}
	var tabs []string
	for _, p := range panes {
		if p == m.pane {
			tabs = append(tabs, activeTabStyle.Render("["+labels[p]+"]"))
		} else {
			tabs = append(tabs, tabStyle.Render(labels[p]))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	switch m.pane {
	case paneActions:
		b.WriteString(m.viewActions())
	case paneShop:
		b.WriteString(m.viewShop())
	case paneMentors:
		b.WriteString(m.viewMentors())
	case paneApply:
		b.WriteString(m.viewApply())
	}

	width := int(float64(m.width) * 0.72)
	if width <= 0 {
		width = 70
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m model) viewActions() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("本周重点计划（%d/3）：\n", len(m.game.SelectedActions)))
	selected := map[string]bool{}
	for _, name := range m.game.SelectedActions {
		selected[name] = true
	}
	for i, a := range m.lib().ActionsFor(m.game.MajorType) {
		box := "[ ]"
		if selected[a.Name] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", box, a.Name, dimStyle.Render(a.Description))
		b.WriteString(m.listLine(i, line))
	}
	return b.String()
}

func (m model) viewShop() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("余额：¥%d\n", m.game.Money))
	for i, item := range m.lib().Shop {
		bought := m.game.PurchaseCounts[item.Name]
		limit := ""
		if item.Limit > 0 {
			limit = fmt.Sprintf(" (%d/%d)", bought, item.Limit)
		}
		line := fmt.Sprintf("%s ¥%d%s %s", item.Name, item.Cost, limit, dimStyle.Render(item.Description))
		b.WriteString(m.listLine(i, line))
	}
	return b.String()
}

var mentorStatusLabels = map[models.MentorStatus]string{
	models.MentorContacting:  "联系中",
	models.MentorFishPond:    "鱼塘",
	models.MentorVerbalOffer: "口头offer",
	models.MentorHardOffer:   "确定offer",
	models.MentorRejected:    "已拒绝",
}

func (m model) viewMentors() string {
	var b strings.Builder

	b.WriteString("已联系的导师：\n")
	if len(m.game.Mentors) == 0 {
		b.WriteString(dimStyle.Render("  （还没有联系任何导师）") + "\n")
	}
	for i, mt := range m.game.Mentors {
		line := fmt.Sprintf("%s%s (%s %s) 声望%d 好感%d [%s]",
			mt.Name, mt.Title, mt.University, mt.ResearchField,
			mt.Reputation, mt.Friendship, mentorStatusLabels[mt.Status])
		b.WriteString(m.listLine(i, line))
	}

	b.WriteString("\n可联系的导师：\n")
	base := len(m.game.Mentors)
	for i, mt := range m.game.PotentialMentors {
		line := fmt.Sprintf("%s%s (%s %s) 声望%d",
			mt.Name, mt.Title, mt.University, mt.ResearchField, mt.Reputation)
		b.WriteString(m.listLine(base+i, line))
	}

	b.WriteString("\n" + helpStyle.Render("Enter 联系 | c 套磁 | d 深入交流 | r 刷新列表"))
	return b.String()
}

func (m model) viewApply() string {
	var b strings.Builder
	label := "夏令营"
	window := models.WindowSummerCamp
	if m.game.Phase == models.PhasePreRecommendation {
		label = "预推免"
		window = models.WindowPreRecommendation
	}
	b.WriteString(fmt.Sprintf("%s申请（综合竞争力评估：%d%%）：\n", label, m.engine.EstimatedSuccessChance(&m.game)))

	for i, u := range m.lib().Universities {
		status := ""
		for _, app := range m.game.Applications {
			if app.University == u.Name && app.Phase == window {
				status = dimStyle.Render(" [" + string(app.Status) + "]")
			}
		}
		line := fmt.Sprintf("%s (%s, 保研率 %.0f%%)%s", u.Name, u.Tier, u.BaoyanRate, status)
		b.WriteString(m.listLine(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("Enter 投递申请，通过初筛会立即进入面试"))
	return b.String()
}

func (m model) viewEvent() string {
	ev := m.game.CurrentEvent
	var b strings.Builder
	b.WriteString(titleStyle.Render("突发事件："+ev.Title) + "\n\n")
	b.WriteString(gameStyle.Render(ev.Description) + "\n\n")
	for i, opt := range ev.Options {
		b.WriteString(m.listLine(i, opt.Text))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ 选择，Enter 确认"))
	return b.String()
}

func (m model) viewInterview() string {
	iv := m.game.Interview
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s 面试 (%d/%d)", iv.University, iv.QuestionIndex+1, len(iv.Questions))) + "\n\n")
	q := iv.Questions[iv.QuestionIndex]
	b.WriteString(gameStyle.Render(q.Text) + "\n\n")
	for i, opt := range q.Options {
		b.WriteString(m.listLine(i, opt.Text))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ 选择回答，Enter 确认"))
	return b.String()
}

func (m model) viewExamReport() string {
	rep := m.game.ExamReport
	var b strings.Builder
	kind := "期末考试"
	if rep.Midterm {
		kind = "期中考试"
	}
	b.WriteString(titleStyle.Render(rep.SemesterName+" "+kind+"成绩单") + "\n\n")
	for _, r := range rep.Results {
		b.WriteString(fmt.Sprintf("  %-24s %3d 分  %-2s (绩点 %.1f)\n", r.CourseName, r.Score, r.Grade, r.GradePoint))
	}
	if rep.Midterm {
		b.WriteString("\n" + dimStyle.Render("期中成绩不计入绩点。") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("\n总绩点：%.2f → %.2f\n", rep.PrevGPA, rep.NewGPA))
	}
	b.WriteString("\n" + helpStyle.Render("Enter 继续"))
	return b.String()
}

func (m model) viewEnding() string {
	var b strings.Builder
	if m.game.Ending == nil {
		b.WriteString(dangerStyle.Render(m.game.GameMessage) + "\n")
		b.WriteString("\n" + helpStyle.Render("q 退出，Ctrl+R 重新开始"))
		return b.String()
	}
	end := m.game.Ending
	b.WriteString(titleStyle.Render(end.Title) + "\n\n")
	b.WriteString(gameStyle.Width(72).Render(end.Detail) + "\n\n")
	if end.Quote != "" {
		b.WriteString(dimStyle.Render("“"+end.Quote+"”") + "\n\n")
	}
	b.WriteString(fmt.Sprintf("最终绩点 %.2f | 简历总分 %d | 英语 %.0f | 人脉 %.0f | 存款 ¥%d\n",
		end.Career.FinalGPA, end.Career.TotalResumeScore, end.Career.FinalEnglish,
		end.Career.FinalSocial, end.Career.FinalMoney))
	b.WriteString(fmt.Sprintf("夏令营：投递 %d / 面试 %d / offer %d\n",
		end.SummerCamp.Applied, end.SummerCamp.Interviews, end.SummerCamp.Offers))
	b.WriteString(fmt.Sprintf("预推免：投递 %d / 面试 %d / offer %d\n",
		end.PreRec.Applied, end.PreRec.Interviews, end.PreRec.Offers))
	b.WriteString("\n" + helpStyle.Render("q 退出，Ctrl+R 重新开始"))
	return b.String()
}

func (m model) renderState() string {
	s := m.game
	var b strings.Builder

	b.WriteString(titleStyle.Render("状态") + "\n")
	b.WriteString(fmt.Sprintf("%s 第%d周\n", m.lib().SemesterName(s.Semester), s.Week))
	b.WriteString(fmt.Sprintf("%s %s\n\n", s.University, s.Major))

	b.WriteString(fmt.Sprintf("绩点   %.2f\n", s.Stats.GPA))
	b.WriteString(fmt.Sprintf("科研   %.0f\n", s.Stats.Research))
	b.WriteString(fmt.Sprintf("竞赛   %.0f\n", s.Stats.Competition))
	b.WriteString(fmt.Sprintf("英语   %.0f\n", s.Stats.English))
	b.WriteString(fmt.Sprintf("心态   %.0f\n", s.Stats.Mental))
	b.WriteString(fmt.Sprintf("体力   %.0f\n", s.Stats.Stamina))
	b.WriteString(fmt.Sprintf("存款   ¥%d\n", s.Money))
	b.WriteString(fmt.Sprintf("人脉   同学%.0f 学长%.0f\n\n", s.Social.Classmates, s.Social.Seniors))

	b.WriteString(titleStyle.Render("简历") + fmt.Sprintf(" (%d分)\n", s.ResumeScore()))
	if len(s.Resume) == 0 {
		b.WriteString(dimStyle.Render("(空空如也)") + "\n")
	}
	for _, item := range s.Resume {
		b.WriteString(fmt.Sprintf("- %s (%d)\n", item.Name, item.Score))
	}

	b.WriteString("\n" + titleStyle.Render("课程") + "\n")
	for _, c := range s.Courses {
		b.WriteString(fmt.Sprintf("%s %.0f%%\n", c.Name, c.Mastery))
	}

	width := int(float64(m.width) * 0.26)
	if width <= 0 {
		width = 28
	}
	return stateStyle.Width(width).Render(b.String())
}

func (m model) listLine(i int, line string) string {
	if i == m.cursor {
		return cursorStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func Run(eng *engine.Engine, debug bool) error {
	p := tea.NewProgram(NewModel(eng, debug), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
