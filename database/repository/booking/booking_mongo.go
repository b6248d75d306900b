package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("meeting_rooms")
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// Insert creates a new booking document.
func (repo *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// FindByID retrieves a booking by its ID. Returns nil when no record matches.
func (repo *MongoBookingRepo) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// FindByRoomDate retrieves all bookings sharing a room and date.
func (repo *MongoBookingRepo) FindByRoomDate(ctx context.Context, room, date string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"room": room, "date": date})
}

// FindByDate retrieves all bookings on the given date, across rooms.
func (repo *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"date": date})
}

// FindByParticipant retrieves bookings where the employee is either the
// requester or listed as an invitee.
func (repo *MongoBookingRepo) FindByParticipant(ctx context.Context, employeeID string) ([]models.Booking, error) {
	filter := bson.M{"$or": []bson.M{
		{"booked_by": employeeID},
		{"invites.employee_id": employeeID},
	}}
	return repo.find(ctx, filter)
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	for cursor.Next(ctxWithTimeout) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// DeleteOne removes at most one booking matching the cancel filter and
// returns the number of records deleted (zero or one).
func (repo *MongoBookingRepo) DeleteOne(ctx context.Context, filter CancelFilter) (int64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{
		"booked_by": filter.BookedBy,
		"room":      filter.Room,
		"date":      filter.Date,
		"time":      filter.Time,
	})
	if err != nil {
		return 0, fmt.Errorf("error deleting booking: %w", err)
	}
	return res.DeletedCount, nil
}

// AppendInvite adds an invite entry to a booking unless the invitee is
// already listed. Returns whether the document was modified.
func (repo *MongoBookingRepo) AppendInvite(ctx context.Context, bookingID string, invite models.Invite) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":                  bookingID,
		"invites.employee_id": bson.M{"$ne": invite.EmployeeID},
	}
	update := bson.M{"$push": bson.M{"invites": invite}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return false, fmt.Errorf("error appending invite to booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount > 0, nil
}

// UpdateInviteStatus sets the status of an existing invite entry, keyed by
// booking ID and invitee ID. Returns whether a matching entry was found.
func (repo *MongoBookingRepo) UpdateInviteStatus(ctx context.Context, bookingID, employeeID, status string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "invites.employee_id": employeeID}
	update := bson.M{"$set": bson.M{"invites.$.status": status}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return false, fmt.Errorf("error updating invite status on booking %s: %w", bookingID, err)
	}
	return res.MatchedCount > 0, nil
}
