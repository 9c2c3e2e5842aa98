package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
)

type fakeNewsStore struct {
	rows      []*models.News
	createErr error
	deleted   []int64
}

func (f *fakeNewsStore) Create(_ context.Context, news *models.News) error {
	if f.createErr != nil {
		return f.createErr
	}
	news.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, news)
	return nil
}

func (f *fakeNewsStore) GetByID(_ context.Context, id int64) (*models.News, error) {
	for _, n := range f.rows {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, apperrors.NewNotFoundError("newsletter not found")
}

func (f *fakeNewsStore) GetAll(_ context.Context, category string) ([]*models.News, error) {
	if category == "" {
		return f.rows, nil
	}
	var out []*models.News
	for _, n := range f.rows {
		if n.Category == category {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNewsStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeImageStorage struct {
	saved   []string
	removed []string
	saveErr error
}

func (f *fakeImageStorage) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	url := "http://localhost:8000/uploads/" + fileHeader.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeImageStorage) Delete(url string) error {
	f.removed = append(f.removed, url)
	return nil
}

func pngHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
		Size:     1024,
	}
}

func TestNewsCreate(t *testing.T) {
	author := &models.Admin{ID: 1, Name: "Root Admin", AdminID: "ADM001"}
	req := &dto.CreateNewsRequest{Title: "Resumption", Content: "School resumes Monday.", Category: "general"}

	t.Run("without an image", func(t *testing.T) {
		store := &fakeNewsStore{}
		storage := &fakeImageStorage{}
		svc := NewNewsService(store, storage)

		news, err := svc.Create(context.Background(), author, req, nil)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if news.Image != nil {
			t.Error("no image was uploaded")
		}
		if news.AuthorID != author.ID {
			t.Errorf("authorId = %d, want %d", news.AuthorID, author.ID)
		}
		if len(storage.saved) != 0 {
			t.Error("storage must be untouched without an upload")
		}
	})

	t.Run("with an image", func(t *testing.T) {
		store := &fakeNewsStore{}
		storage := &fakeImageStorage{}
		svc := NewNewsService(store, storage)

		news, err := svc.Create(context.Background(), author, req, pngHeader("banner.png"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if news.Image == nil || *news.Image != storage.saved[0] {
			t.Errorf("image = %v, want %q", news.Image, storage.saved[0])
		}
	})

	t.Run("failed row drops the orphaned image", func(t *testing.T) {
		store := &fakeNewsStore{createErr: errors.New("insert failed")}
		storage := &fakeImageStorage{}
		svc := NewNewsService(store, storage)

		_, err := svc.Create(context.Background(), author, req, pngHeader("banner.png"))
		if err == nil {
			t.Fatal("expected the create to fail")
		}
		if len(storage.removed) != 1 {
			t.Errorf("removed = %v, want the uploaded image cleaned up", storage.removed)
		}
	})
}

func TestNewsDelete(t *testing.T) {
	author := &models.Admin{ID: 1, Name: "Root Admin", AdminID: "ADM001"}

	t.Run("unknown id", func(t *testing.T) {
		svc := NewNewsService(&fakeNewsStore{}, &fakeImageStorage{})
		err := svc.Delete(context.Background(), 42)
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Errorf("err = %v, want ErrResourceNotFound", err)
		}
	})

	t.Run("removes the row and its image", func(t *testing.T) {
		store := &fakeNewsStore{}
		storage := &fakeImageStorage{}
		svc := NewNewsService(store, storage)

		news, err := svc.Create(context.Background(), author,
			&dto.CreateNewsRequest{Title: "Resumption", Content: "School resumes.", Category: "general"},
			pngHeader("banner.png"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if err := svc.Delete(context.Background(), news.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(store.deleted) != 1 || store.deleted[0] != news.ID {
			t.Errorf("deleted rows = %v", store.deleted)
		}
		if len(storage.removed) != 1 {
			t.Errorf("removed images = %v", storage.removed)
		}
	})
}
