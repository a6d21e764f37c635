package models

import "time"

// Enrollment pairs a student with a course. The pair is unique; enrolling
// twice is absorbed at the store by the composite index. No soft delete here:
// unenrolling must free the pair for a later re-enroll, so rows are removed
// for real.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	StudentID uint      `json:"student_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	CreatedAt time.Time `json:"enrolled_at"`
}
