package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growstory/internal/models/db_models"
	"growstory/internal/models/request_models"
	"growstory/pkg/utils"
)

type fakeLeafRepo struct {
	leaves   map[uuid.UUID]*db_models.Leaf
	journals []*db_models.Journal
	saved    []*db_models.Leaf
	deleted  []*db_models.Leaf
}

func newFakeLeafRepo() *fakeLeafRepo {
	return &fakeLeafRepo{
		leaves: make(map[uuid.UUID]*db_models.Leaf),
	}
}

func (f *fakeLeafRepo) InsertTx(ctx context.Context, leaf *db_models.Leaf) error {
	if leaf.ID == uuid.Nil {
		leaf.ID = uuid.New()
	}
	f.leaves[leaf.ID] = leaf
	return nil
}

func (f *fakeLeafRepo) Save(ctx context.Context, leaf *db_models.Leaf) error {
	f.saved = append(f.saved, leaf)
	return nil
}

func (f *fakeLeafRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Leaf, error) {
	return f.leaves[id], nil
}

func (f *fakeLeafRepo) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Leaf, error) {
	var leaves []db_models.Leaf
	for _, leaf := range f.leaves {
		if leaf.AccountID != nil && *leaf.AccountID == accountID {
			leaves = append(leaves, *leaf)
		}
	}
	return leaves, nil
}

func (f *fakeLeafRepo) InsertJournal(ctx context.Context, journal *db_models.Journal) error {
	f.journals = append(f.journals, journal)
	return nil
}

func (f *fakeLeafRepo) Delete(ctx context.Context, leaf *db_models.Leaf) error {
	f.deleted = append(f.deleted, leaf)
	delete(f.leaves, leaf.ID)
	return nil
}

func newTestLeafService(t *testing.T) (LeafServiceInterface, *fakeLeafRepo, *fakeAccountRepo, *fakeStorage) {
	t.Helper()
	accountRepo := newFakeAccountRepo()
	storage := &fakeStorage{uploadURL: "https://cdn.test/leaves/img.png"}
	accountService := NewAccountService(accountRepo, &fakePointService{initialScore: 500, bonus: 10}, storage)

	leafRepo := newFakeLeafRepo()
	svc := NewLeafService(leafRepo, accountService, storage)
	return svc, leafRepo, accountRepo, storage
}

func TestCreateLeaf(t *testing.T) {
	svc, leafRepo, accountRepo, _ := newTestLeafService(t)

	account := &db_models.Account{Email: "a@x.com"}
	accountRepo.add(account)

	leafID, err := svc.CreateLeaf(context.Background(), account.ID, request_models.LeafPostRequest{
		LeafName: "monstera",
		Content:  "repotted today",
	}, nil)
	require.NoError(t, err)

	leaf := leafRepo.leaves[leafID]
	require.NotNil(t, leaf)
	assert.Equal(t, "monstera", leaf.LeafName)
	assert.Equal(t, account.ID, *leaf.AccountID)
}

func TestCreateLeafUnknownAccount(t *testing.T) {
	svc, _, _, _ := newTestLeafService(t)

	_, err := svc.CreateLeaf(context.Background(), uuid.New(), request_models.LeafPostRequest{LeafName: "monstera"}, nil)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestUpdateLeafOwnershipGuard(t *testing.T) {
	svc, leafRepo, accountRepo, _ := newTestLeafService(t)

	owner := &db_models.Account{Email: "owner@x.com"}
	accountRepo.add(owner)

	leaf := &db_models.Leaf{LeafName: "fern", AccountID: &owner.ID}
	require.NoError(t, leafRepo.InsertTx(context.Background(), leaf))

	err := svc.UpdateLeaf(context.Background(), uuid.New(), leaf.ID, request_models.LeafPatchRequest{LeafName: "stolen"}, nil)
	assert.ErrorIs(t, err, utils.ErrAccountNotAllowed)
	assert.Equal(t, "fern", leaf.LeafName)
}

func TestUpdateLeafPartial(t *testing.T) {
	svc, leafRepo, accountRepo, _ := newTestLeafService(t)

	owner := &db_models.Account{Email: "owner@x.com"}
	accountRepo.add(owner)

	leaf := &db_models.Leaf{LeafName: "fern", Content: "old", AccountID: &owner.ID}
	require.NoError(t, leafRepo.InsertTx(context.Background(), leaf))

	err := svc.UpdateLeaf(context.Background(), owner.ID, leaf.ID, request_models.LeafPatchRequest{LeafName: "boston fern"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "boston fern", leaf.LeafName)
	assert.Equal(t, "old", leaf.Content, "unset fields keep their value")
	assert.Len(t, leafRepo.saved, 1)
}

func TestAddJournal(t *testing.T) {
	svc, leafRepo, accountRepo, _ := newTestLeafService(t)

	owner := &db_models.Account{Email: "owner@x.com"}
	accountRepo.add(owner)

	leaf := &db_models.Leaf{LeafName: "fern", AccountID: &owner.ID}
	require.NoError(t, leafRepo.InsertTx(context.Background(), leaf))

	err := svc.AddJournal(context.Background(), owner.ID, leaf.ID, request_models.JournalPostRequest{
		Title:   "week 3",
		Content: "new frond",
	}, nil)
	require.NoError(t, err)

	require.Len(t, leafRepo.journals, 1)
	assert.Equal(t, leaf.ID, leafRepo.journals[0].LeafID)
}

func TestDeleteLeafUnlinksPlantObj(t *testing.T) {
	svc, leafRepo, accountRepo, _ := newTestLeafService(t)

	owner := &db_models.Account{Email: "owner@x.com"}
	accountRepo.add(owner)

	leaf := &db_models.Leaf{LeafName: "fern", AccountID: &owner.ID}
	require.NoError(t, leafRepo.InsertTx(context.Background(), leaf))

	plantObj := &db_models.PlantObj{}
	leaf.UpdatePlantObj(plantObj)

	require.NoError(t, svc.DeleteLeaf(context.Background(), owner.ID, leaf.ID))

	assert.Len(t, leafRepo.deleted, 1)
	assert.Nil(t, plantObj.Leaf)
	assert.Nil(t, plantObj.LeafID)
}

func TestGetLeafNotFound(t *testing.T) {
	svc, _, _, _ := newTestLeafService(t)

	_, err := svc.GetLeaf(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrLeafNotFound)
}
