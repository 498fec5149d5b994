package engine

import (
	"fmt"
	"math"

	"github.com/tatianab/baoyan-sim/internal/models"
)

// gradeFor maps a percentage score to its letter grade and grade point.
func gradeFor(score int) (string, float64) {
	switch {
	case score >= 95:
		return "A+", 4.3
	case score >= 90:
		return "A", 4.0
	case score >= 85:
		return "A-", 3.7
	case score >= 80:
		return "B+", 3.3
	case score >= 75:
		return "B", 3.0
	case score >= 70:
		return "B-", 2.7
	case score >= 65:
		return "C+", 2.3
	case score >= 60:
		return "C", 2.0
	case score >= 50:
		return "D", 1.0
	default:
		return "F", 0
	}
}

// runExams scores every active course and fills the exam report. Midterms
// double effective mastery and leave the GPA untouched; finals fold the
// credit-weighted semester GPA into the running cumulative GPA.
func (e *Engine) runExams(next *models.GameState, midterm bool) []string {
	mentalFactor := 0.8 + (next.Stats.Mental/100)*0.4
	results := make([]models.ExamResult, 0, len(next.Courses))

	for _, course := range next.Courses {
		randomFactor := 0.9 + e.rng.Float64()*0.2
		effective := course.Mastery
		if midterm {
			effective = math.Min(100, course.Mastery*2)
		}
		score := 40 + effective*0.6*mentalFactor*randomFactor
		score -= float64(course.Difficulty-3) * 3
		score = clamp(score, 0, 100)

		rounded := int(math.Round(score))
		grade, gp := gradeFor(rounded)
		results = append(results, models.ExamResult{
			CourseName: course.Name,
			Score:      rounded,
			Grade:      grade,
			GradePoint: gp,
			Credit:     course.Credit,
		})
	}

	if midterm {
		next.ExamReport = &models.ExamReport{
			Results:      results,
			PrevGPA:      next.Stats.GPA,
			NewGPA:       next.Stats.GPA,
			SemesterName: e.lib.SemesterName(next.Semester) + " (期中)",
			Midterm:      true,
		}
		return []string{"期中考试结束，快去看看你的成绩单吧。"}
	}

	totalCredits := 0
	weightedGP := 0.0
	for _, r := range results {
		totalCredits += r.Credit
		weightedGP += r.GradePoint * float64(r.Credit)
	}
	if totalCredits == 0 {
		totalCredits = 1
	}
	semesterGPA := weightedGP / float64(totalCredits)

	oldGPA := next.Stats.GPA
	newGPA := semesterGPA
	if oldGPA != 0 && next.Semester != 1 {
		newGPA = (oldGPA*float64(next.Semester-1) + semesterGPA) / float64(next.Semester)
	}

	next.ExamReport = &models.ExamReport{
		Results:      results,
		PrevGPA:      oldGPA,
		NewGPA:       newGPA,
		SemesterName: e.lib.SemesterName(next.Semester),
	}
	next.Stats.GPA = math.Round(newGPA*100) / 100
	return []string{fmt.Sprintf("期末考试结束！你的绩点变动为: %.2f -> %.2f", oldGPA, newGPA)}
}
