// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/redconnect-dev/redconnect/internal/auth"
	"github.com/redconnect-dev/redconnect/internal/core"
)

type fakeRepo struct {
	users  map[int64]*User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*User), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, user *User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (f *fakeRepo) UpdateProfile(_ context.Context, user *User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	*stored = *user
	return nil
}

func (f *fakeRepo) SetDonorStatus(
	_ context.Context,
	id int64,
	isDonor bool,
) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("set donor status: %w", core.ErrNotFound)
	}
	u.IsDonor = isDonor
	return nil
}

func (f *fakeRepo) SetAdminStatus(
	_ context.Context,
	id int64,
	isAdmin bool,
) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("set admin status: %w", core.ErrNotFound)
	}
	u.IsAdmin = isAdmin
	return nil
}

func (f *fakeRepo) UpdatePassword(
	_ context.Context,
	id int64,
	passwordHash string,
) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepo) IncrementTokenVersion(_ context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("increment token version: %w", core.ErrNotFound)
	}
	u.TokenVersion++
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) Search(
	_ context.Context,
	params SearchParams,
) ([]DonorRow, error) {
	var rows []DonorRow
	for _, u := range f.users {
		if params.BloodGroup != "" && u.BloodGroup != params.BloodGroup {
			continue
		}
		if params.Location != "" &&
			!strings.Contains(
				strings.ToLower(u.Location),
				strings.ToLower(params.Location),
			) {
			continue
		}
		rows = append(rows, DonorRow{
			ID:         u.ID,
			Name:       u.Name,
			Phone:      u.Phone,
			BloodGroup: u.BloodGroup,
			Location:   u.Location,
			IsDonor:    u.IsDonor,
		})
		if len(rows) == params.Limit {
			break
		}
	}
	return rows, nil
}

func (f *fakeRepo) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func seedUser(t *testing.T, svc *Service, email string) *auth.UserInfo {
	t.Helper()

	info, err := svc.Create(context.Background(), auth.CreateUserParams{
		Email:        email,
		PasswordHash: "$argon2id$hash",
		Name:         "Test User",
		BloodGroup:   "O+",
		Location:     "Dhaka",
		Phone:        "555-0100",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return info
}

func TestCreateValidatesBloodGroup(t *testing.T) {
	svc := NewService(newFakeRepo(), 10)

	_, err := svc.Create(context.Background(), auth.CreateUserParams{
		Email:        "x@example.com",
		PasswordHash: "h",
		Name:         "X",
		BloodGroup:   "Z+",
		Location:     "Dhaka",
		Phone:        "555",
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Create() error = %v, want ErrInvalidInput", err)
	}
}

func TestCreateLowercasesEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 10)

	info := seedUser(t, svc, "Person@Example.COM")

	if info.Email != "person@example.com" {
		t.Errorf("Email = %q, want lowercased", info.Email)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 10)

	seedUser(t, svc, "dup@example.com")

	_, err := svc.Create(context.Background(), auth.CreateUserParams{
		Email:        "dup@example.com",
		PasswordHash: "h",
		Name:         "Dup",
		BloodGroup:   "A+",
		Location:     "Dhaka",
		Phone:        "555",
	})
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Errorf("Create() error = %v, want ErrDuplicateKey", err)
	}
}

func TestToggleAdminSelfGuard(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 10)
	admin := seedUser(t, svc, "admin@example.com")

	_, err := svc.ToggleAdmin(context.Background(), admin.ID, admin.ID)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("ToggleAdmin(self) error = %v, want ErrForbidden", err)
	}
}

func TestToggleAdminFlips(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 10)
	admin := seedUser(t, svc, "admin@example.com")
	target := seedUser(t, svc, "target@example.com")

	updated, err := svc.ToggleAdmin(context.Background(), admin.ID, target.ID)
	if err != nil {
		t.Fatalf("ToggleAdmin() error = %v", err)
	}
	if !updated.IsAdmin {
		t.Error("IsAdmin = false, want true after toggle")
	}

	updated, err = svc.ToggleAdmin(context.Background(), admin.ID, target.ID)
	if err != nil {
		t.Fatalf("ToggleAdmin() error = %v", err)
	}
	if updated.IsAdmin {
		t.Error("IsAdmin = true, want false after second toggle")
	}
}

func TestDeleteUserSelfGuard(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 10)
	admin := seedUser(t, svc, "admin@example.com")

	err := svc.DeleteUser(context.Background(), admin.ID, admin.ID)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("DeleteUser(self) error = %v, want ErrForbidden", err)
	}
	if _, ok := repo.users[admin.ID]; !ok {
		t.Error("user removed despite self-delete guard")
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 10)
	admin := seedUser(t, svc, "admin@example.com")
	target := seedUser(t, svc, "target@example.com")

	if err := svc.DeleteUser(context.Background(), admin.ID, target.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if _, ok := repo.users[target.ID]; ok {
		t.Error("user still present after delete")
	}
}

func TestSearchValidatesBloodGroup(t *testing.T) {
	svc := NewService(newFakeRepo(), 10)

	_, err := svc.Search(context.Background(), SearchParams{BloodGroup: "bad"})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Search() error = %v, want ErrInvalidInput", err)
	}
}

func TestSearchAppliesDefaultLimit(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 3)

	for i := 0; i < 5; i++ {
		seedUser(t, svc, fmt.Sprintf("donor%d@example.com", i))
	}

	rows, err := svc.Search(context.Background(), SearchParams{BloodGroup: "O+"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d, want 3 (configured limit)", len(rows))
	}
}

func TestRoleDerivation(t *testing.T) {
	u := &User{}
	if got := u.Role(); got != RoleUser {
		t.Errorf("Role() = %q, want %q", got, RoleUser)
	}

	u.IsAdmin = true
	if got := u.Role(); got != RoleAdmin {
		t.Errorf("Role() = %q, want %q", got, RoleAdmin)
	}
}
