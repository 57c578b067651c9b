package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmanager-api/domain/models"
	"taskmanager-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// owned จำกัดทุก query ให้อยู่ใน task ของ owner เท่านั้น
func owned(db *gorm.DB, id, ownerID uint) *gorm.DB {
	return db.Where("id = ? AND user_id = ?", id, ownerID)
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Task, error) {
	tasks := []*models.Task{}
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	var task models.Task
	err := owned(r.db.WithContext(ctx), id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Replace(ctx context.Context, id, ownerID uint, fields models.TaskFields) (*models.Task, error) {
	var task models.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := owned(tx, id, ownerID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&task).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repositories.ErrNotFound
			}
			return err
		}

		task.Apply(fields)
		// Save เขียนทุก column รวมถึงค่า nil เพื่อให้เป็น full replace
		return tx.Save(&task).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, ownerID uint) error {
	result := owned(r.db.WithContext(ctx), id, ownerID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
