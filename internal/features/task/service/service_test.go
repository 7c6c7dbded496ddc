package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/task/models"
	usermodels "github.com/coincoast/memesboost-backend/internal/features/user/models"
)

type fakeTaskRepo struct {
	tasks       map[int64]*models.Task
	completions map[[2]int64]bool
	nextID      int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]*models.Task{}, completions: map[[2]int64]bool{}, nextID: 1}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*models.Task, error) {
	if t, ok := r.tasks[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, apperrors.NotFound("task")
}

func (r *fakeTaskRepo) ListActive(context.Context) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.tasks {
		if t.IsActive {
			copied := *t
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) SetActive(_ context.Context, id int64, active bool) error {
	if t, ok := r.tasks[id]; ok {
		t.IsActive = active
		return nil
	}
	return apperrors.NotFound("task")
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return apperrors.NotFound("task")
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) InsertCompletion(_ context.Context, userID, taskID int64) (bool, error) {
	key := [2]int64{userID, taskID}
	if r.completions[key] {
		return false, nil
	}
	r.completions[key] = true
	return true, nil
}

func (r *fakeTaskRepo) CompletedTaskIDs(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for key := range r.completions {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeTaskRepo) CompletedByUser(context.Context) (map[int64][]int64, error) {
	out := map[int64][]int64{}
	for key := range r.completions {
		out[key[0]] = append(out[key[0]], key[1])
	}
	return out, nil
}

type fakeAccounts struct {
	points map[int64]int64
}

func (a *fakeAccounts) GetByID(_ context.Context, id int64) (*usermodels.User, error) {
	points, ok := a.points[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return &usermodels.User{ID: id, Points: points}, nil
}

func (a *fakeAccounts) AddPoints(_ context.Context, id int64, points int64) (int64, error) {
	if _, ok := a.points[id]; !ok {
		return 0, apperrors.NotFound("user")
	}
	a.points[id] += points
	return a.points[id], nil
}

type spyTaskCache struct {
	stored      []*models.Task
	invalidated int
}

func (c *spyTaskCache) GetActive(context.Context) ([]*models.Task, error) {
	return c.stored, nil
}

func (c *spyTaskCache) SetActive(_ context.Context, tasks []*models.Task) error {
	c.stored = tasks
	return nil
}

func (c *spyTaskCache) Invalidate(context.Context) error {
	c.stored = nil
	c.invalidated++
	return nil
}

func TestCreateTask(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), &fakeAccounts{points: map[int64]int64{}}, nil)

	task, err := svc.Create(context.Background(), "Follow on X", "https://x.com/memesboost", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.True(t, task.IsActive, "new tasks start active")
}

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), &fakeAccounts{points: map[int64]int64{}}, nil)

	cases := []struct {
		name        string
		description string
		link        string
		points      int64
	}{
		{"empty description", "", "https://x.com/a", 10},
		{"blank link", "Follow", "   ", 10},
		{"zero points", "Follow", "https://x.com/a", 0},
		{"negative points", "Follow", "https://x.com/a", -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.description, tc.link, tc.points)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		})
	}
}

func TestToggleHidesFromListing(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeAccounts{points: map[int64]int64{}}, nil)

	task, err := svc.Create(context.Background(), "Follow on X", "https://x.com/memesboost", 10)
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(context.Background(), task.ID, false))

	tasks, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, svc.Toggle(context.Background(), task.ID, true))
	tasks, err = svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestToggleUnknownTask(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), &fakeAccounts{points: map[int64]int64{}}, nil)
	err := svc.Toggle(context.Background(), 42, true)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestCompleteAwardsOnce(t *testing.T) {
	repo := newFakeTaskRepo()
	accounts := &fakeAccounts{points: map[int64]int64{1: 0}}
	svc := NewTaskService(repo, accounts, nil)

	task, err := svc.Create(context.Background(), "Join Telegram", "https://t.me/memesboost", 25)
	require.NoError(t, err)

	resp, err := svc.Complete(context.Background(), 1, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Points)
	assert.Equal(t, []int64{task.ID}, resp.CompletedTasks)

	// The identical replay changes nothing.
	resp, err = svc.Complete(context.Background(), 1, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.Points)
	assert.Equal(t, []int64{task.ID}, resp.CompletedTasks)
	assert.Equal(t, int64(25), accounts.points[1])
}

func TestCompleteUsesStoredPoints(t *testing.T) {
	repo := newFakeTaskRepo()
	accounts := &fakeAccounts{points: map[int64]int64{1: 0}}
	svc := NewTaskService(repo, accounts, nil)

	task, err := svc.Create(context.Background(), "Retweet", "https://x.com/memesboost/status/1", 15)
	require.NoError(t, err)

	resp, err := svc.Complete(context.Background(), 1, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), resp.Points)
}

func TestCompleteUnknownRefs(t *testing.T) {
	repo := newFakeTaskRepo()
	accounts := &fakeAccounts{points: map[int64]int64{1: 0}}
	svc := NewTaskService(repo, accounts, nil)

	task, err := svc.Create(context.Background(), "Retweet", "https://x.com/memesboost/status/1", 15)
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), 1, 999)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = svc.Complete(context.Background(), 999, task.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = svc.Complete(context.Background(), 0, task.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestListActiveUsesCache(t *testing.T) {
	repo := newFakeTaskRepo()
	cache := &spyTaskCache{}
	svc := NewTaskService(repo, &fakeAccounts{points: map[int64]int64{}}, cache)

	task, err := svc.Create(context.Background(), "Follow on X", "https://x.com/memesboost", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated, "create invalidates the cached listing")

	tasks, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Len(t, cache.stored, 1, "miss populates the cache")

	// Mutate storage behind the cache: the stale entry is served until
	// invalidated.
	require.NoError(t, repo.SetActive(context.Background(), task.ID, false))
	tasks, err = svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, svc.Toggle(context.Background(), task.ID, false))
	tasks, err = svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
