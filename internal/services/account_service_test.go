package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growstory/internal/models/db_models"
	"growstory/internal/models/request_models"
	"growstory/pkg/utils"
)

// --- fakes ---

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
	byEmail  map[string]*db_models.Account

	inserted []*db_models.Account
	saved    []*db_models.Account
	deleted  []*db_models.Account

	findErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[uuid.UUID]*db_models.Account),
		byEmail:  make(map[string]*db_models.Account),
	}
}

func (f *fakeAccountRepo) add(account *db_models.Account) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	f.byEmail[account.Email] = account
}

func (f *fakeAccountRepo) InsertTx(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.inserted = append(f.inserted, account)
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) Save(ctx context.Context, account *db_models.Account) error {
	f.saved = append(f.saved, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByIDWithPoint(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, account *db_models.Account) error {
	f.deleted = append(f.deleted, account)
	delete(f.accounts, account.ID)
	delete(f.byEmail, account.Email)
	return nil
}

type fakePointService struct {
	initialScore int
	bonus        int
	events       []db_models.PointEventType
}

func (f *fakePointService) CreatePoint() *db_models.Point {
	return &db_models.Point{Score: f.initialScore}
}

func (f *fakePointService) AttendanceBonus() int {
	return f.bonus
}

func (f *fakePointService) RecordHistory(ctx context.Context, accountID uuid.UUID, eventType db_models.PointEventType, amount int, balance int, metadata map[string]interface{}) error {
	f.events = append(f.events, eventType)
	return nil
}

type fakeStorage struct {
	uploads   int
	deletes   int
	uploadURL string
	deleteErr error
}

func (f *fakeStorage) UploadImage(ctx context.Context, file *multipart.FileHeader, processType string) (string, error) {
	f.uploads++
	return f.uploadURL, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, imageURL string, processType string) error {
	f.deletes++
	return f.deleteErr
}

func newTestAccountService(t *testing.T) (*AccountService, *fakeAccountRepo, *fakePointService, *fakeStorage) {
	t.Helper()
	repo := newFakeAccountRepo()
	points := &fakePointService{initialScore: 500, bonus: 10}
	storage := &fakeStorage{uploadURL: "https://cdn.test/profiles/img.png"}
	svc := NewAccountService(repo, points, storage).(*AccountService)
	return svc, repo, points, storage
}

func signupRequest(email string) request_models.SignUpRequest {
	return request_models.SignUpRequest{
		DisplayName: "gardener",
		Email:       email,
		Password:    "secret123",
	}
}

// --- tests ---

func TestCreateAccount(t *testing.T) {
	svc, repo, _, _ := newTestAccountService(t)

	id, err := svc.CreateAccount(context.Background(), signupRequest("a@x.com"), nil)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Len(t, repo.inserted, 1)
	created := repo.inserted[0]

	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, []string{"USER"}, []string(created.Roles))
	assert.NoError(t, utils.ComparePasswords(created.PasswordHash, "secret123"))

	require.NotNil(t, created.Point)
	assert.Equal(t, 500, created.Point.Score)
	assert.Same(t, created, created.Point.Account, "ledger back-reference must point at the new account")
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, repo, _, storage := newTestAccountService(t)

	_, err := svc.CreateAccount(context.Background(), signupRequest("a@x.com"), nil)
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), signupRequest("a@x.com"), nil)
	require.ErrorIs(t, err, utils.ErrAccountAlreadyExists)

	assert.Len(t, repo.inserted, 1, "second registration must not persist")
	assert.Zero(t, storage.uploads)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _, _ := newTestAccountService(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	repo.add(&db_models.Account{Email: "a@x.com", PasswordHash: hash})

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "a@x.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestAccountService(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestUpdatePassword(t *testing.T) {
	svc, repo, _, _ := newTestAccountService(t)

	hash, err := utils.HashPassword("current1")
	require.NoError(t, err)
	account := &db_models.Account{Email: "a@x.com", PasswordHash: hash}
	repo.add(account)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), account.ID, request_models.PasswordPatchRequest{
			PresentPassword: "not-current",
			ChangedPassword: "fresh-pass",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
		assert.Empty(t, repo.saved)
	})

	t.Run("unchanged password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), account.ID, request_models.PasswordPatchRequest{
			PresentPassword: "current1",
			ChangedPassword: "current1",
		})
		assert.ErrorIs(t, err, utils.ErrPasswordUnchanged)
		assert.Empty(t, repo.saved)
	})

	t.Run("success", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), account.ID, request_models.PasswordPatchRequest{
			PresentPassword: "current1",
			ChangedPassword: "fresh-pass",
		})
		require.NoError(t, err)
		require.Len(t, repo.saved, 1)
		assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "fresh-pass"))
	})
}

func TestUpdateProfileImageBestEffortDelete(t *testing.T) {
	svc, repo, _, storage := newTestAccountService(t)
	storage.deleteErr = assert.AnError

	account := &db_models.Account{Email: "a@x.com", ProfileImageURL: "https://cdn.test/profiles/old.png"}
	repo.add(account)

	err := svc.UpdateProfileImage(context.Background(), account.ID, &multipart.FileHeader{Filename: "new.png"})
	require.NoError(t, err, "a failed image delete must not block the update")

	assert.Equal(t, 1, storage.deletes)
	assert.Equal(t, 1, storage.uploads)
	assert.Equal(t, storage.uploadURL, account.ProfileImageURL)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo, _, storage := newTestAccountService(t)

	account := &db_models.Account{Email: "a@x.com", ProfileImageURL: "https://cdn.test/profiles/me.png"}
	repo.add(account)

	require.NoError(t, svc.DeleteAccount(context.Background(), account.ID))

	assert.Len(t, repo.deleted, 1)
	assert.Equal(t, 1, storage.deletes)
}

func TestFindVerifiedAccount(t *testing.T) {
	svc, repo, _, _ := newTestAccountService(t)

	account := &db_models.Account{Email: "a@x.com"}
	repo.add(account)

	found, err := svc.FindVerifiedAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Same(t, account, found)

	_, err = svc.FindVerifiedAccount(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestIsAuthIDMatching(t *testing.T) {
	svc, _, _, _ := newTestAccountService(t)

	id := uuid.New()
	assert.NoError(t, svc.IsAuthIDMatching(id, id))
	assert.ErrorIs(t, svc.IsAuthIDMatching(id, uuid.New()), utils.ErrAccountNotAllowed)
}

func TestBuy(t *testing.T) {
	svc, _, _, _ := newTestAccountService(t)

	account := &db_models.Account{}
	account.UpdatePoint(&db_models.Point{Score: 100})

	require.NoError(t, svc.Buy(account, 60))
	assert.Equal(t, 40, account.Point.Score)

	err := svc.Buy(account, 50)
	require.ErrorIs(t, err, utils.ErrInsufficientPoints)
	assert.Equal(t, 40, account.Point.Score, "failed buy must leave the balance unchanged")

	assert.Same(t, account, account.Point.Account)
}

func TestBuyNegativePrice(t *testing.T) {
	svc, _, _, _ := newTestAccountService(t)

	account := &db_models.Account{}
	account.UpdatePoint(&db_models.Point{Score: 100})

	err := svc.Buy(account, -5)
	assert.ErrorIs(t, err, utils.ErrInvalidPointPrice)
	assert.Equal(t, 100, account.Point.Score)
}

func TestResell(t *testing.T) {
	svc, _, _, _ := newTestAccountService(t)

	account := &db_models.Account{}
	account.UpdatePoint(&db_models.Point{Score: 40})

	require.NoError(t, svc.Resell(account, 30))
	assert.Equal(t, 70, account.Point.Score)

	err := svc.Resell(account, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidPointPrice)
	assert.Equal(t, 70, account.Point.Score)
}

func TestCheckAttendance(t *testing.T) {
	svc, repo, points, _ := newTestAccountService(t)

	account := &db_models.Account{Email: "a@x.com"}
	account.UpdatePoint(&db_models.Point{Score: 100})
	repo.add(account)

	score, err := svc.CheckAttendance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 110, score)
	assert.True(t, account.Attendance)
	assert.Contains(t, points.events, db_models.PointEventAttendance)

	// second check while the flag is set earns nothing
	score, err = svc.CheckAttendance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 110, score)
}
