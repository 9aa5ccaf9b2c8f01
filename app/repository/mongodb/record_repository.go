package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "academy-dashboard/app/models/mongodb"
)

// RecordRepository is the dashboard's view of the remote record store.
// Fetches return whole collections: the store does no filtering, ordering
// or pagination for us, everything downstream works on full snapshots.
type RecordRepository interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetAllAttendance(ctx context.Context) ([]models.Attendance, error)

	HasAnyRecords(ctx context.Context) (bool, error)
	InsertStudents(ctx context.Context, students []models.Student) error
	InsertCourses(ctx context.Context, courses []models.Course) error
	InsertAttendance(ctx context.Context, attendance []models.Attendance) error
}

type recordRepository struct {
	students   *mongo.Collection
	courses    *mongo.Collection
	attendance *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) RecordRepository {
	return &recordRepository{
		students:   db.Collection("students"),
		courses:    db.Collection("courses"),
		attendance: db.Collection("attendance"),
	}
}

func (r *recordRepository) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	cursor, err := r.students.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *recordRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.courses.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *recordRepository) GetAllAttendance(ctx context.Context) ([]models.Attendance, error) {
	cursor, err := r.attendance.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attendance []models.Attendance
	if err := cursor.All(ctx, &attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// HasAnyRecords reports whether any of the three collections holds data.
// Used by the demo seeder to avoid writing into a live store.
func (r *recordRepository) HasAnyRecords(ctx context.Context) (bool, error) {
	for _, col := range []*mongo.Collection{r.students, r.courses, r.attendance} {
		n, err := col.CountDocuments(ctx, bson.D{})
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *recordRepository) InsertStudents(ctx context.Context, students []models.Student) error {
	docs := make([]interface{}, 0, len(students))
	for _, s := range students {
		docs = append(docs, s)
	}
	_, err := r.students.InsertMany(ctx, docs)
	return err
}

func (r *recordRepository) InsertCourses(ctx context.Context, courses []models.Course) error {
	docs := make([]interface{}, 0, len(courses))
	for _, c := range courses {
		docs = append(docs, c)
	}
	_, err := r.courses.InsertMany(ctx, docs)
	return err
}

func (r *recordRepository) InsertAttendance(ctx context.Context, attendance []models.Attendance) error {
	docs := make([]interface{}, 0, len(attendance))
	for _, a := range attendance {
		docs = append(docs, a)
	}
	_, err := r.attendance.InsertMany(ctx, docs)
	return err
}
