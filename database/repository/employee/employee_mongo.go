package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo constructs a new instance of MongoEmployeeRepo.
func NewMongoEmployeeRepo() EmployeeRepository {
	db := database.MongoClient.Database("meeting_rooms")
	return &MongoEmployeeRepo{coll: db.Collection("employees")}
}

// FindByID retrieves an employee by ID. Returns nil when no record matches.
func (repo *MongoEmployeeRepo) FindByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var emp models.Employee
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"employee_id": employeeID}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching employee %s: %w", employeeID, err)
	}
	return &emp, nil
}

// ListAll retrieves every employee record in the directory.
func (repo *MongoEmployeeRepo) ListAll(ctx context.Context) ([]models.Employee, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var employees []models.Employee
	for cursor.Next(ctxWithTimeout) {
		var emp models.Employee
		if err := cursor.Decode(&emp); err != nil {
			return nil, fmt.Errorf("error decoding employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return employees, nil
}
