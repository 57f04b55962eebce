package repository

import (
	"github.com/coopsight/coopsight-backend/internal/model"
)

type UserRepository interface {
	NextID() int
	Append(user model.User)
	All() []model.User
	ByID(id int) (model.User, bool)
	EmailExists(email string) bool
	Reset()
}

type userRepository struct {
	seq   sequence
	users []model.User
}

func NewUserRepository() UserRepository {
	return &userRepository{seq: newSequence()}
}

func (r *userRepository) NextID() int {
	return r.seq.NextID()
}

func (r *userRepository) Append(user model.User) {
	r.users = append(r.users, user)
}

// All returns a copy of the stored users in insertion order.
func (r *userRepository) All() []model.User {
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *userRepository) ByID(id int) (model.User, bool) {
	for _, u := range r.users {
		if u.UserID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (r *userRepository) EmailExists(email string) bool {
	for _, u := range r.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (r *userRepository) Reset() {
	r.users = nil
	r.seq.Reset()
}
