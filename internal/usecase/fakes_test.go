package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// duplicateErr mimics the unique violation pgx surfaces, so services map it
// the same way they would against a real database.
func duplicateErr() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

// In-memory repository fakes. A Repository built over them has no database
// handle, so WithinTx runs the callback directly.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return duplicateErr()
		}
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []*entity.User
	for id := int64(1); id < f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			clone := *user
			users = append(users, &clone)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}
	for id, existing := range f.users {
		if id != user.ID && existing.Username == user.Username {
			return duplicateErr()
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %d not found", id)
	}
	delete(f.users, id)
	return nil
}

type fakeBookRepo struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]*entity.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{nextID: 1, books: make(map[int64]*entity.Book)}
}

func (f *fakeBookRepo) Create(_ context.Context, book *entity.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.books {
		if existing.Code == book.Code {
			return duplicateErr()
		}
	}
	book.ID = f.nextID
	f.nextID++
	clone := *book
	f.books[book.ID] = &clone
	return nil
}

func (f *fakeBookRepo) FindByID(_ context.Context, id int64) (*entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	book, ok := f.books[id]
	if !ok {
		return nil, nil
	}
	clone := *book
	return &clone, nil
}

func (f *fakeBookRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Book, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookRepo) FindAll(_ context.Context) ([]*entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var books []*entity.Book
	for id := int64(1); id < f.nextID; id++ {
		if book, ok := f.books[id]; ok {
			clone := *book
			books = append(books, &clone)
		}
	}
	return books, nil
}

func (f *fakeBookRepo) Update(_ context.Context, book *entity.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[book.ID]; !ok {
		return fmt.Errorf("book %d not found", book.ID)
	}
	for id, existing := range f.books {
		if id != book.ID && existing.Code == book.Code {
			return duplicateErr()
		}
	}
	clone := *book
	f.books[book.ID] = &clone
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[id]; !ok {
		return fmt.Errorf("book %d not found", id)
	}
	delete(f.books, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, orders: make(map[int64]*entity.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = f.nextID
	f.nextID++
	clone := *order
	clone.Items = nil
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderRepo) AddItem(_ context.Context, item *entity.OrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[item.OrderID]
	if !ok {
		return fmt.Errorf("order %d not found", item.OrderID)
	}
	item.ID = int64(len(order.Items) + 1)
	order.Items = append(order.Items, *item)
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []*entity.Order
	for id := int64(1); id < f.nextID; id++ {
		if order, ok := f.orders[id]; ok {
			clone := *order
			orders = append(orders, &clone)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []*entity.Order
	for id := int64(1); id < f.nextID; id++ {
		if order, ok := f.orders[id]; ok && order.UserID == userID {
			clone := *order
			orders = append(orders, &clone)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status entity.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %d not found", id)
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) ItemsByOrderID(_ context.Context, orderID int64) ([]entity.OrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return nil, nil
	}
	return append([]entity.OrderItem(nil), order.Items...), nil
}

type testRepos struct {
	repo   *repository.Repository
	users  *fakeUserRepo
	books  *fakeBookRepo
	orders *fakeOrderRepo
}

func newTestRepos() *testRepos {
	users := newFakeUserRepo()
	books := newFakeBookRepo()
	orders := newFakeOrderRepo()
	return &testRepos{
		repo: &repository.Repository{
			User:  users,
			Book:  books,
			Order: orders,
		},
		users:  users,
		books:  books,
		orders: orders,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
