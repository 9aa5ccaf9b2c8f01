package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student mirrors a document in the "students" collection. EnrollmentDate
// stays a string because the records arrive with mixed formats; parsing is
// the statistics layer's problem, not the decoder's.
type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Program        string             `bson:"program,omitempty" json:"program,omitempty"`
	EnrollmentDate string             `bson:"enrollmentDate,omitempty" json:"enrollmentDate,omitempty"`
}

type Course struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Code     string             `bson:"code,omitempty" json:"code,omitempty"`
	Lecturer string             `bson:"lecturer,omitempty" json:"lecturer,omitempty"`
}

// Attendance is one check-in event. The dashboard only ever counts these,
// but the reference fields are kept so the documents stay useful elsewhere.
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"studentId,omitempty" json:"studentId,omitempty"`
	CourseID  string             `bson:"courseId,omitempty" json:"courseId,omitempty"`
	SessionID string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
}
