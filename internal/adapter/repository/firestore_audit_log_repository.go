package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
)

type firestoreAdminLogRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminLogRepository(client *firestore.Client) repository.AdminLogRepository {
	return &firestoreAdminLogRepository{
		client: client,
	}
}

func (r *firestoreAdminLogRepository) Create(ctx context.Context, log *entity.AdminLog) error {
	if log.ID == "" {
		log.ID = r.client.Collection("adminLogs").NewDoc().ID
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	_, err := r.client.Collection("adminLogs").Doc(log.ID).Set(ctx, log)
	if err != nil {
		return errors.Internal("Failed to save admin log", err)
	}

	return nil
}

func (r *firestoreAdminLogRepository) List(ctx context.Context) ([]*entity.AdminLog, error) {
	iter := r.client.Collection("adminLogs").OrderBy("timestamp", firestore.Desc).Documents(ctx)

	var logs []*entity.AdminLog
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate admin logs", err)
		}

		var log entity.AdminLog
		if err := doc.DataTo(&log); err != nil {
			return nil, errors.Internal("Failed to parse admin log data", err)
		}
		logs = append(logs, &log)
	}

	return logs, nil
}

type firestoreUserLogRepository struct {
	client *firestore.Client
}

func NewFirestoreUserLogRepository(client *firestore.Client) repository.UserLogRepository {
	return &firestoreUserLogRepository{
		client: client,
	}
}

func (r *firestoreUserLogRepository) Create(ctx context.Context, log *entity.UserLog) error {
	if log.ID == "" {
		log.ID = r.client.Collection("userLogs").NewDoc().ID
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	_, err := r.client.Collection("userLogs").Doc(log.ID).Set(ctx, log)
	if err != nil {
		return errors.Internal("Failed to save user log", err)
	}

	return nil
}

func (r *firestoreUserLogRepository) List(ctx context.Context) ([]*entity.UserLog, error) {
	return r.list(r.client.Collection("userLogs").OrderBy("timestamp", firestore.Desc).Documents(ctx))
}

func (r *firestoreUserLogRepository) ListByUser(ctx context.Context, userID string) ([]*entity.UserLog, error) {
	return r.list(r.client.Collection("userLogs").Where("userId", "==", userID).Documents(ctx))
}

func (r *firestoreUserLogRepository) list(iter *firestore.DocumentIterator) ([]*entity.UserLog, error) {
	var logs []*entity.UserLog
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate user logs", err)
		}

		var log entity.UserLog
		if err := doc.DataTo(&log); err != nil {
			return nil, errors.Internal("Failed to parse user log data", err)
		}
		logs = append(logs, &log)
	}

	return logs, nil
}
