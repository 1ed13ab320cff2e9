// Package policy holds the pure authorization decisions shared by the
// course controllers. Functions here never touch the database; callers
// look up the facts (course row, enrollment presence) and ask.
package policy

import (
	courseModels "courseply/models/course"
)

// CanEditCourse reports whether userID may mutate the course or its
// lessons. Only the author may.
func CanEditCourse(userID string, course *courseModels.Course) bool {
	return userID != "" && userID == course.AuthorID
}

// CanViewLesson reports whether userID may open the lessons of a course:
// the author always, anyone else only while enrolled.
func CanViewLesson(userID string, course *courseModels.Course, enrolled bool) bool {
	if userID == "" {
		return false
	}
	return userID == course.AuthorID || enrolled
}
