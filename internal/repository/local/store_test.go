package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docvault/internal/catalog"
	"docvault/internal/model"
	"docvault/internal/repository"
	repoMocks "docvault/internal/repository/mocks"
	"docvault/internal/storage"
	storeMocks "docvault/internal/storage/mocks"
)

const expiry = 15 * time.Minute

func testMeta() model.UploadMetadata {
	return model.UploadMetadata{
		MajorHead:       "Personal",
		MinorHead:       "Emily",
		DocumentDate:    "09-02-2024",
		DocumentRemarks: "lease",
		Tags:            []model.Tag{{Name: "home"}, {Name: "contract"}},
		UserID:          "u-1",
	}
}

func TestStore_Upload(t *testing.T) {
	ctx := context.Background()
	file := model.FileInfo{Name: "Lease.PDF", ContentType: "application/pdf", Size: 5}
	fixed := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		meta       model.UploadMetadata
		setupMocks func(mObj *storeMocks.MockStorage, mRepo *repoMocks.MockCatalogRepository, r io.Reader)
		wantErrMsg string
	}{
		{
			name: "happy path",
			meta: testMeta(),
			setupMocks: func(mObj *storeMocks.MockStorage, mRepo *repoMocks.MockCatalogRepository, r io.Reader) {
				mObj.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/") && strings.HasSuffix(key, ".pdf")
				}), r, storage.PutObjectOptions{
					Size:        5,
					ContentType: "application/pdf",
					Metadata:    map[string]string{"original-filename": "Lease.PDF"},
				}).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key, Size: 5, ContentType: opt.ContentType}
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(d *repository.StoredDocument) bool {
					return d.ID != "" &&
						strings.HasPrefix(d.StoragePath, "documents/"+d.ID) &&
						d.DocumentDate.Equal(time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)) &&
						assert.ObjectsAreEqual([]string{"home", "contract"}, d.Tags) &&
						d.UploadedBy == "u-1" &&
						d.CreatedAt.Equal(fixed)
				})).Return(nil)
			},
		},
		{
			name:       "bad document date",
			meta:       model.UploadMetadata{DocumentDate: "2024-02-09"},
			setupMocks: func(*storeMocks.MockStorage, *repoMocks.MockCatalogRepository, io.Reader) {},
			wantErrMsg: "parse document date",
		},
		{
			name: "storage error",
			meta: testMeta(),
			setupMocks: func(mObj *storeMocks.MockStorage, mRepo *repoMocks.MockCatalogRepository, r io.Reader) {
				mObj.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name: "repository error with successful rollback",
			meta: testMeta(),
			setupMocks: func(mObj *storeMocks.MockStorage, mRepo *repoMocks.MockCatalogRepository, r io.Reader) {
				mObj.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(errors.New("db fail"))
				mObj.On("Delete", ctx, mock.Anything).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name: "repository error with failed rollback",
			meta: testMeta(),
			setupMocks: func(mObj *storeMocks.MockStorage, mRepo *repoMocks.MockCatalogRepository, r io.Reader) {
				mObj.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(errors.New("db fail"))
				mObj.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mObj := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockCatalogRepository)
			s := New(mRepo, mObj, expiry)
			s.now = func() time.Time { return fixed }

			r := strings.NewReader("hello")
			tt.setupMocks(mObj, mRepo, r)

			err := s.Upload(ctx, r, file, tt.meta)

			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
			}
			mObj.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestStore_Search(t *testing.T) {
	ctx := context.Background()
	q := catalog.Build(catalog.NewSearchCriteria())

	t.Run("resolves urls", func(t *testing.T) {
		mObj := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockCatalogRepository)

		mRepo.On("Search", ctx, q).Return([]repository.StoredDocument{{
			ID:           "id-1",
			FileName:     "scan.png",
			ContentType:  "image/png",
			StoragePath:  "documents/id-1.png",
			MajorHead:    "Professional",
			MinorHead:    "IT",
			DocumentDate: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
			UploadedBy:   "u-2",
			Tags:         []string{"laptop"},
			CreatedAt:    time.Date(2023, 11, 6, 9, 30, 0, 0, time.UTC),
		}}, nil)
		mObj.On("PresignGet", ctx, "documents/id-1.png", expiry).Return("https://minio/documents/id-1.png?sig=1", nil)

		got, err := New(mRepo, mObj, expiry).Search(ctx, q)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.DocumentRecord{
			ID:           "id-1",
			FileURL:      "https://minio/documents/id-1.png?sig=1",
			FileName:     "scan.png",
			FileType:     "image/png",
			MajorHead:    "Professional",
			MinorHead:    "IT",
			DocumentDate: "05-11-2023",
			UploadedBy:   "u-2",
			UploadTime:   "2023-11-06T09:30:00Z",
			Tags:         []model.Tag{{Name: "laptop"}},
			StoragePath:  "documents/id-1.png",
		}, got[0])
		mRepo.AssertExpectations(t)
		mObj.AssertExpectations(t)
	})

	t.Run("negative page window is refused", func(t *testing.T) {
		for _, bad := range []catalog.SerializedQuery{{Start: -1, Length: 10}, {Start: 0, Length: -5}} {
			mRepo := new(repoMocks.MockCatalogRepository)

			_, err := New(mRepo, nil, expiry).Search(ctx, bad)

			assert.ErrorIs(t, err, repository.ErrInvalidPage)
			mRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockCatalogRepository)
		mRepo.On("Search", ctx, q).Return(nil, errors.New("db fail"))

		_, err := New(mRepo, nil, expiry).Search(ctx, q)
		assert.EqualError(t, err, "db fail")
	})

	t.Run("presign error", func(t *testing.T) {
		mObj := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockCatalogRepository)
		mRepo.On("Search", ctx, q).Return([]repository.StoredDocument{{StoragePath: "k"}}, nil)
		mObj.On("PresignGet", ctx, "k", expiry).Return("", errors.New("no creds"))

		_, err := New(mRepo, mObj, expiry).Search(ctx, q)
		assert.EqualError(t, err, "presign k: no creds")
	})
}

func TestStore_Tags(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCatalogRepository)
	mRepo.On("Tags", ctx, "inv", tagQueryLimit).Return([]string{"invoice"}, nil)

	got, err := New(mRepo, nil, expiry).Tags(ctx, "  inv ")

	assert.NoError(t, err)
	assert.Equal(t, []string{"invoice"}, got)
	mRepo.AssertExpectations(t)
}
