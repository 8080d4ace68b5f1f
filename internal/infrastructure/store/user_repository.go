package store

import (
	"context"
	"errors"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

const usersCollection = "users.json"

// UserRepository persists users in users.json.
type UserRepository struct {
	store *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends the user after a duplicate-email scan. The scan and the
// rewrite are not one atomic step; that window is an accepted weakness
// carried over from the design this store implements.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	users, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	users = append(users, *user)
	if err := r.store.Save(usersCollection, users); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	users, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			if err := r.store.Save(usersCollection, users); err != nil {
				return nil, err
			}
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// all loads the collection, treating a missing file as an empty one so the
// very first registration can run against an unseeded data directory.
func (r *UserRepository) all() ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}
