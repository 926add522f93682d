package employee

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// Save assigns an id when e.ID is empty, then persists e. An existing id
	// overwrites the stored record.
	Save(ctx context.Context, e *Employee) error
	// Update overwrites the names and email of an existing record only. It
	// reports false, and writes nothing, when no record has e.ID.
	Update(ctx context.Context, e *Employee) (bool, error)
	// FindByID returns nil, nil when no record has the id.
	FindByID(ctx context.Context, id string) (*Employee, error)
	// FindAll is lazy: the store is queried when the sequence is ranged over.
	FindAll(ctx context.Context) iter.Seq2[Employee, error]
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns the gorm backed store used for both postgres and
// sqlite.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// AutoMigrate creates the employees table when missing.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Employee{})
}

func (r *repository) Save(ctx context.Context, e *Employee) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
		return r.db.WithContext(ctx).Create(e).Error
	}
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) (bool, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"first_name": e.FirstName,
			"last_name":  e.LastName,
			"email":      e.Email,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	e.UpdatedAt = now
	return true, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&e)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) iter.Seq2[Employee, error] {
	return func(yield func(Employee, error) bool) {
		rows, err := r.db.WithContext(ctx).
			Model(&Employee{}).
			Order("created_at, id").
			Rows()
		if err != nil {
			yield(Employee{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var e Employee
			if err := r.db.ScanRows(rows, &e); err != nil {
				yield(Employee{}, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Employee{}, err)
		}
	}
}

func (r *repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Employee{}).Error
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
