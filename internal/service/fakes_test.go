package service

import (
	"context"
	"errors"
	"io"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/llm"

	"github.com/google/uuid"
)

// fakeStore is shared in-memory state backing the fake repositories.
type fakeStore struct {
	users     []*entity.User
	folders   []*entity.Folder
	instances []*entity.Instance
	messages  []*entity.InstanceMessage
	files     []*entity.File
	quizzes   []*entity.Quiz
	summaries []*entity.Summary
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) FolderRepository() contract.FolderRepository {
	return &fakeFolderRepo{store: u.store}
}
func (u *fakeUow) InstanceRepository() contract.InstanceRepository {
	return &fakeInstanceRepo{store: u.store}
}
func (u *fakeUow) InstanceMessageRepository() contract.InstanceMessageRepository {
	return &fakeMessageRepo{store: u.store}
}
func (u *fakeUow) FileRepository() contract.FileRepository {
	return &fakeFileRepo{store: u.store}
}
func (u *fakeUow) QuizRepository() contract.QuizRepository {
	return &fakeQuizRepo{store: u.store}
}
func (u *fakeUow) SummaryRepository() contract.SummaryRepository {
	return &fakeSummaryRepo{store: u.store}
}

// User

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users = append(r.store.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

// Folder

type fakeFolderRepo struct {
	store *fakeStore
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *entity.Folder) error {
	cp := *folder
	r.store.folders = append(r.store.folders, &cp)
	return nil
}

func (r *fakeFolderRepo) Update(ctx context.Context, folder *entity.Folder) error {
	for i, f := range r.store.folders {
		if f.Id == folder.Id {
			cp := *folder
			r.store.folders[i] = &cp
		}
	}
	return nil
}

func (r *fakeFolderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.folders[:0]
	for _, f := range r.store.folders {
		if f.Id != id {
			kept = append(kept, f)
		}
	}
	r.store.folders = kept
	return nil
}

func (r *fakeFolderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	for _, f := range r.store.folders {
		if matchFolder(f, specs) {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFolderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	var out []*entity.Folder
	for _, f := range r.store.folders {
		if matchFolder(f, specs) {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchFolder(f *entity.Folder, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if f.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

// Instance

type fakeInstanceRepo struct {
	store *fakeStore
}

func (r *fakeInstanceRepo) Create(ctx context.Context, instance *entity.Instance) error {
	cp := *instance
	r.store.instances = append(r.store.instances, &cp)
	return nil
}

func (r *fakeInstanceRepo) Update(ctx context.Context, instance *entity.Instance) error {
	for i, inst := range r.store.instances {
		if inst.Id == instance.Id {
			cp := *instance
			r.store.instances[i] = &cp
		}
	}
	return nil
}

func (r *fakeInstanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.instances[:0]
	for _, inst := range r.store.instances {
		if inst.Id != id {
			kept = append(kept, inst)
		}
	}
	r.store.instances = kept
	return nil
}

func (r *fakeInstanceRepo) DeleteAllByFolderId(ctx context.Context, folderId uuid.UUID) error {
	kept := r.store.instances[:0]
	for _, inst := range r.store.instances {
		if inst.FolderId != folderId {
			kept = append(kept, inst)
		}
	}
	r.store.instances = kept
	return nil
}

func (r *fakeInstanceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instance, error) {
	for _, inst := range r.store.instances {
		if matchInstance(inst, specs) {
			cp := *inst
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInstanceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Instance, error) {
	var out []*entity.Instance
	for _, inst := range r.store.instances {
		if matchInstance(inst, specs) {
			cp := *inst
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchInstance(inst *entity.Instance, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if inst.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if inst.UserId != s.UserID {
				return false
			}
		case specification.ByFolderID:
			if inst.FolderId != s.FolderID {
				return false
			}
		case specification.ByType:
			if inst.Type != s.Type {
				return false
			}
		}
	}
	return true
}

// InstanceMessage

type fakeMessageRepo struct {
	store *fakeStore
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.InstanceMessage) error {
	cp := *message
	r.store.messages = append(r.store.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) DeleteAllByInstanceIds(ctx context.Context, instanceIds []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(instanceIds))
	for _, id := range instanceIds {
		drop[id] = true
	}
	kept := r.store.messages[:0]
	for _, msg := range r.store.messages {
		if !drop[msg.InstanceId] {
			kept = append(kept, msg)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InstanceMessage, error) {
	var out []*entity.InstanceMessage
	for _, msg := range r.store.messages {
		if matchMessage(msg, specs) {
			cp := *msg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	msgs, _ := r.FindAll(ctx, specs...)
	return int64(len(msgs)), nil
}

func matchMessage(msg *entity.InstanceMessage, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByInstanceID:
			if msg.InstanceId != s.InstanceID {
				return false
			}
		}
	}
	return true
}

// File

type fakeFileRepo struct {
	store *fakeStore
}

func (r *fakeFileRepo) Create(ctx context.Context, file *entity.File) error {
	cp := *file
	r.store.files = append(r.store.files, &cp)
	return nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.files[:0]
	for _, f := range r.store.files {
		if f.Id != id {
			kept = append(kept, f)
		}
	}
	r.store.files = kept
	return nil
}

func (r *fakeFileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.File, error) {
	for _, f := range r.store.files {
		if matchFile(f, specs) {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.File, error) {
	var out []*entity.File
	for _, f := range r.store.files {
		if matchFile(f, specs) {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchFile(f *entity.File, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if f.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if f.UserId != s.UserID {
				return false
			}
		case specification.ByFolderID:
			if f.FolderId != s.FolderID {
				return false
			}
		}
	}
	return true
}

// Quiz

type fakeQuizRepo struct {
	store *fakeStore
}

func (r *fakeQuizRepo) Create(ctx context.Context, quiz *entity.Quiz) error {
	cp := *quiz
	r.store.quizzes = append(r.store.quizzes, &cp)
	return nil
}

func (r *fakeQuizRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.quizzes[:0]
	for _, q := range r.store.quizzes {
		if q.Id != id {
			kept = append(kept, q)
		}
	}
	r.store.quizzes = kept
	return nil
}

func (r *fakeQuizRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quiz, error) {
	for _, q := range r.store.quizzes {
		if matchQuiz(q, specs) {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeQuizRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error) {
	var out []*entity.Quiz
	for _, q := range r.store.quizzes {
		if matchQuiz(q, specs) {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchQuiz(q *entity.Quiz, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if q.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if q.UserId != s.UserID {
				return false
			}
		case specification.ByFolderID:
			if q.FolderId != s.FolderID {
				return false
			}
		case specification.ByInstanceID:
			if q.InstanceId == nil || *q.InstanceId != s.InstanceID {
				return false
			}
		}
	}
	return true
}

// Summary

type fakeSummaryRepo struct {
	store *fakeStore
}

func (r *fakeSummaryRepo) Create(ctx context.Context, summary *entity.Summary) error {
	for _, existing := range r.store.summaries {
		if existing.FileId == summary.FileId {
			return contract.ErrDuplicateSummary
		}
	}
	cp := *summary
	r.store.summaries = append(r.store.summaries, &cp)
	return nil
}

func (r *fakeSummaryRepo) Update(ctx context.Context, summary *entity.Summary) error {
	for i, s := range r.store.summaries {
		if s.Id == summary.Id {
			cp := *summary
			r.store.summaries[i] = &cp
		}
	}
	return nil
}

func (r *fakeSummaryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.summaries[:0]
	for _, s := range r.store.summaries {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.summaries = kept
	return nil
}

func (r *fakeSummaryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error) {
	for _, s := range r.store.summaries {
		if matchSummary(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSummaryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error) {
	var out []*entity.Summary
	for _, s := range r.store.summaries {
		if matchSummary(s, specs) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchSummary(s *entity.Summary, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch spec := sp.(type) {
		case specification.ByID:
			if s.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != spec.UserID {
				return false
			}
		case specification.ByFolderID:
			if s.FolderId != spec.FolderID {
				return false
			}
		case specification.ByFileID:
			if s.FileId != spec.FileID {
				return false
			}
		}
	}
	return true
}

// fakeProvider returns canned responses per call, or the configured error.
type fakeProvider struct {
	responses []string
	errs      []error
	calls     []*llm.Request
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *llm.Request) (string, error) {
	idx := len(p.calls)
	p.calls = append(p.calls, req)
	if idx < len(p.errs) && p.errs[idx] != nil {
		return "", p.errs[idx]
	}
	if idx < len(p.responses) {
		return p.responses[idx], nil
	}
	return "", nil
}

// fakeObjectStore serves uploads from a map keyed by URL.
type fakeObjectStore struct {
	objects map[string][]byte
}

func (s *fakeObjectStore) Upload(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	return "http://store.local/" + objectName, nil
}

func (s *fakeObjectStore) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	if data, ok := s.objects[fileURL]; ok {
		return data, nil
	}
	return nil, errors.New("object not found")
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
