package search

import (
	"time"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/store"
)

// UserQuery is the optional predicate set for user search.
type UserQuery struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *auth.UserRole
	StartDate *time.Time
	EndDate   *time.Time
	PageSort
}

var userComparators = map[string]func(a, b store.User) bool{
	"firstName": func(a, b store.User) bool { return a.FirstName < b.FirstName },
	"lastName":  func(a, b store.User) bool { return a.LastName < b.LastName },
	"email":     func(a, b store.User) bool { return a.Email < b.Email },
	"role":      func(a, b store.User) bool { return a.Role < b.Role },
}

func userComparator(sortBy string) func(a, b store.User) bool {
	if cmp, ok := userComparators[sortBy]; ok {
		return cmp
	}
	return func(a, b store.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
}

func FilterUsers(users []store.User, q UserQuery) []store.User {
	if q.FirstName != nil && *q.FirstName != "" {
		users = filterList(users, func(u store.User) bool {
			return containsFold(u.FirstName, *q.FirstName)
		})
	}
	if q.LastName != nil && *q.LastName != "" {
		users = filterList(users, func(u store.User) bool {
			return containsFold(u.LastName, *q.LastName)
		})
	}
	if q.Email != nil && *q.Email != "" {
		users = filterList(users, func(u store.User) bool {
			return containsFold(u.Email, *q.Email)
		})
	}
	if q.Role != nil {
		users = filterList(users, func(u store.User) bool {
			return u.Role == *q.Role
		})
	}
	if q.StartDate != nil {
		users = filterList(users, func(u store.User) bool {
			return !u.CreatedAt.Before(*q.StartDate)
		})
	}
	if q.EndDate != nil {
		users = filterList(users, func(u store.User) bool {
			return !u.CreatedAt.After(*q.EndDate)
		})
	}
	return sortAndPaginate(users, userComparator(q.SortBy), q.PageSort)
}
