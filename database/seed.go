package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	models "academy-dashboard/app/models/mongodb"
	repository "academy-dashboard/app/repository/mongodb"
)

// SeedDemoData fills an empty store with a small demo data set so a fresh
// install renders a meaningful dashboard. It refuses to touch a store that
// already holds records in any of the three collections.
//
// The enrollment dates mix formats and include one junk value, the same
// shape real imports arrive in.
func SeedDemoData(ctx context.Context, repo repository.RecordRepository, log *zap.Logger) error {
	hasData, err := repo.HasAnyRecords(ctx)
	if err != nil {
		return fmt.Errorf("check existing records: %w", err)
	}
	if hasData {
		log.Info("demo seed skipped, store already has records")
		return nil
	}

	now := time.Now().UTC()
	daysAgo := func(days int) string {
		return now.AddDate(0, 0, -days).Format(time.RFC3339)
	}

	students := []models.Student{
		{ID: primitive.NewObjectID(), Name: "Alya Putri", Email: "alya.putri@academy.test", Program: "Informatika", EnrollmentDate: daysAgo(3)},
		{ID: primitive.NewObjectID(), Name: "Budi Santoso", Email: "budi.santoso@academy.test", Program: "Sistem Informasi", EnrollmentDate: daysAgo(12)},
		{ID: primitive.NewObjectID(), Name: "Citra Lestari", Email: "citra.lestari@academy.test", Program: "Informatika", EnrollmentDate: now.AddDate(0, 0, -25).Format("2006-01-02")},
		{ID: primitive.NewObjectID(), Name: "Dewi Anggraini", Email: "dewi.anggraini@academy.test", Program: "Teknik Komputer", EnrollmentDate: daysAgo(45)},
		{ID: primitive.NewObjectID(), Name: "Eko Prasetyo", Email: "eko.prasetyo@academy.test", Program: "Informatika", EnrollmentDate: daysAgo(120)},
		{ID: primitive.NewObjectID(), Name: "Fajar Nugroho", Email: "fajar.nugroho@academy.test", Program: "Sistem Informasi", EnrollmentDate: now.AddDate(0, 0, -200).Format("2006-01-02")},
		{ID: primitive.NewObjectID(), Name: "Gita Maharani", Email: "gita.maharani@academy.test", Program: "Teknik Komputer", EnrollmentDate: "registered 2023"},
		{ID: primitive.NewObjectID(), Name: "Hendra Wijaya", Email: "hendra.wijaya@academy.test", Program: "Informatika", EnrollmentDate: daysAgo(80)},
	}

	courses := []models.Course{
		{ID: primitive.NewObjectID(), Name: "Algoritma dan Struktur Data", Code: "IF2110", Lecturer: "Dr. Ratna Sari"},
		{ID: primitive.NewObjectID(), Name: "Basis Data", Code: "IF2240", Lecturer: "Prof. Agus Hartono"},
		{ID: primitive.NewObjectID(), Name: "Pemrograman Web", Code: "IF3110", Lecturer: "Dr. Sinta Dewanti"},
		{ID: primitive.NewObjectID(), Name: "Jaringan Komputer", Code: "IF3130", Lecturer: "Ir. Bambang Yulianto"},
		{ID: primitive.NewObjectID(), Name: "Kecerdasan Buatan", Code: "IF3170", Lecturer: "Dr. Ratna Sari"},
	}

	attendance := make([]models.Attendance, 0, 24)
	for i := 0; i < 24; i++ {
		student := students[i%len(students)]
		course := courses[i%len(courses)]
		attendance = append(attendance, models.Attendance{
			ID:        primitive.NewObjectID(),
			StudentID: student.ID.Hex(),
			CourseID:  course.ID.Hex(),
			SessionID: uuid.New().String(),
			Date:      daysAgo(i % 14),
		})
	}

	if err := repo.InsertStudents(ctx, students); err != nil {
		return fmt.Errorf("seed students: %w", err)
	}
	if err := repo.InsertCourses(ctx, courses); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}
	if err := repo.InsertAttendance(ctx, attendance); err != nil {
		return fmt.Errorf("seed attendance: %w", err)
	}

	log.Info("demo data seeded",
		zap.Int("students", len(students)),
		zap.Int("courses", len(courses)),
		zap.Int("attendance", len(attendance)),
	)
	return nil
}
