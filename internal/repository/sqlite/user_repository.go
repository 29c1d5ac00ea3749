package sqlite

import (
	"context"

	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
)

type userRepository struct {
	db *db.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *db.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, name string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("inserting user: name=%s", name)

	var u models.User
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (name)
VALUES (?)
RETURNING id, name, created_at
`, name).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		log.Error("failed to insert user: %v", err)
		return nil, err
	}
	log.Debug("user inserted: id=%d", u.ID)
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("listing users")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, created_at
FROM users
ORDER BY created_at ASC, id ASC
`)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			log.Error("failed to scan user row: %v", err)
			return nil, err
		}
		users = append(users, u)
	}

	log.Debug("found %d users", len(users))
	return users, rows.Err()
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "users", id)
}
