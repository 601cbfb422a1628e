package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

type edgeKey struct {
	subject, object uuid.UUID
	kind            model.ObjectKind
}

// fakeEdges mimics the unique (subject, object, kind) constraint.
type fakeEdges struct {
	mu    sync.Mutex
	byKey map[edgeKey]model.Edge
	calls int

	insertErr error
	findErr   error
	deleteErr error
	// afterConflict runs between a conflicting insert and the following find.
	afterConflict func()
}

var _ repository.EdgeRepository = (*fakeEdges)(nil)

func newFakeEdges() *fakeEdges { return &fakeEdges{byKey: map[edgeKey]model.Edge{}} }

func (f *fakeEdges) Insert(_ context.Context, e *model.Edge) error {
	f.mu.Lock()
	f.calls++
	if f.insertErr != nil {
		f.mu.Unlock()
		return f.insertErr
	}
	k := edgeKey{e.SubjectID, e.ObjectID, e.Kind}
	if _, ok := f.byKey[k]; ok {
		hook := f.afterConflict
		f.mu.Unlock()
		if hook != nil {
			hook()
		}
		return errs.ErrConflict
	}
	f.byKey[k] = *e
	f.mu.Unlock()
	return nil
}

func (f *fakeEdges) Find(_ context.Context, subject, object uuid.UUID, kind model.ObjectKind) (*model.Edge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	e, ok := f.byKey[edgeKey{subject, object, kind}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEdges) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for k, e := range f.byKey {
		if e.ID == id {
			delete(f.byKey, k)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeEdges) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byKey)
}

type fakeUsers struct {
	byID  map[uuid.UUID]*model.User
	calls int

	createErr error
	existsErr error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers(ids ...uuid.UUID) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]*model.User{}}
	for _, id := range ids {
		f.byID[id] = &model.User{ID: id, Username: id.String()[:8]}
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	for _, x := range f.byID {
		if x.Username == u.Username {
			return errs.ErrConflict
		}
	}
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	f.calls++
	u, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	f.calls++
	for _, u := range f.byID {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	f.calls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeUsers) ListSubscribers(_ context.Context, channelID uuid.UUID) ([]model.Channel, error) {
	f.calls++
	return []model.Channel{{ID: channelID}}, nil
}

func (f *fakeUsers) ListSubscriptions(_ context.Context, subscriberID uuid.UUID) ([]model.Channel, error) {
	f.calls++
	return []model.Channel{{ID: subscriberID}}, nil
}

type fakeVideos struct {
	byID  map[uuid.UUID]*model.Video
	order []uuid.UUID
	calls int
	liked []model.Video
}

var _ repository.VideoRepository = (*fakeVideos)(nil)

func newFakeVideos(vs ...model.Video) *fakeVideos {
	f := &fakeVideos{byID: map[uuid.UUID]*model.Video{}}
	for i := range vs {
		v := vs[i]
		f.byID[v.ID] = &v
		f.order = append(f.order, v.ID)
	}
	return f
}

func (f *fakeVideos) match(flt discovery.Filter) []model.Video {
	q := strings.ToLower(flt.Text)
	var out []model.Video
	for _, id := range f.order {
		v, ok := f.byID[id]
		if !ok {
			continue
		}
		if flt.OwnerID != uuid.Nil && v.OwnerID != flt.OwnerID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(v.Title), q) && !strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		out = append(out, *v)
	}
	return out
}

func (f *fakeVideos) Scan(_ context.Context, d discovery.Descriptor) ([]model.Video, error) {
	all := f.match(d.Filter)
	if d.SortField == discovery.SortTitle {
		sort.SliceStable(all, func(i, j int) bool {
			if d.SortDirection == discovery.Desc {
				return all[i].Title > all[j].Title
			}
			return all[i].Title < all[j].Title
		})
	}
	if d.Skip >= len(all) {
		return nil, nil
	}
	return all[d.Skip:min(d.Skip+d.Limit, len(all))], nil
}

func (f *fakeVideos) Count(_ context.Context, flt discovery.Filter) (int64, error) {
	return int64(len(f.match(flt))), nil
}

func (f *fakeVideos) Create(_ context.Context, v *model.Video) error {
	f.calls++
	cpy := *v
	f.byID[v.ID] = &cpy
	f.order = append(f.order, v.ID)
	return nil
}

func (f *fakeVideos) Get(_ context.Context, id uuid.UUID) (*model.Video, error) {
	f.calls++
	v, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *v
	return &c, nil
}

func (f *fakeVideos) Update(_ context.Context, v *model.Video) error {
	f.calls++
	if _, ok := f.byID[v.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *v
	f.byID[v.ID] = &cpy
	return nil
}

func (f *fakeVideos) Delete(_ context.Context, id uuid.UUID) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeVideos) TogglePublished(_ context.Context, id uuid.UUID) (*model.Video, error) {
	f.calls++
	v, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	c := *v
	return &c, nil
}

func (f *fakeVideos) ListLikedBy(_ context.Context, _ uuid.UUID) ([]model.Video, error) {
	f.calls++
	return f.liked, nil
}

type fakeComments struct {
	byID  map[uuid.UUID]*model.Comment
	calls int
	last  discovery.Descriptor
}

var _ repository.CommentRepository = (*fakeComments)(nil)

func newFakeComments(cs ...model.Comment) *fakeComments {
	f := &fakeComments{byID: map[uuid.UUID]*model.Comment{}}
	for i := range cs {
		c := cs[i]
		f.byID[c.ID] = &c
	}
	return f
}

func (f *fakeComments) Scan(_ context.Context, d discovery.Descriptor) ([]model.Comment, error) {
	f.last = d
	var out []model.Comment
	for _, c := range f.byID {
		if c.VideoID == d.Filter.VideoID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComments) Count(_ context.Context, flt discovery.Filter) (int64, error) {
	var n int64
	for _, c := range f.byID {
		if c.VideoID == flt.VideoID {
			n++
		}
	}
	return n, nil
}

func (f *fakeComments) Create(_ context.Context, c *model.Comment) error {
	f.calls++
	cpy := *c
	f.byID[c.ID] = &cpy
	return nil
}

func (f *fakeComments) Get(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	f.calls++
	c, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *c
	return &cpy, nil
}

func (f *fakeComments) UpdateText(_ context.Context, id uuid.UUID, text string) (*model.Comment, error) {
	f.calls++
	c, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c.Text = text
	cpy := *c
	return &cpy, nil
}

func (f *fakeComments) Delete(_ context.Context, id uuid.UUID) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeTweets struct {
	byID  map[uuid.UUID]*model.Tweet
	calls int
}

var _ repository.TweetRepository = (*fakeTweets)(nil)

func newFakeTweets(ts ...model.Tweet) *fakeTweets {
	f := &fakeTweets{byID: map[uuid.UUID]*model.Tweet{}}
	for i := range ts {
		t := ts[i]
		f.byID[t.ID] = &t
	}
	return f
}

func (f *fakeTweets) Create(_ context.Context, t *model.Tweet) error {
	f.calls++
	cpy := *t
	f.byID[t.ID] = &cpy
	return nil
}

func (f *fakeTweets) Get(_ context.Context, id uuid.UUID) (*model.Tweet, error) {
	f.calls++
	t, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *t
	return &cpy, nil
}

func (f *fakeTweets) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]model.Tweet, error) {
	f.calls++
	out := []model.Tweet{}
	for _, t := range f.byID {
		if t.AuthorID == authorID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTweets) UpdateText(_ context.Context, id uuid.UUID, text string) (*model.Tweet, error) {
	f.calls++
	t, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	t.Text = text
	cpy := *t
	return &cpy, nil
}

func (f *fakeTweets) Delete(_ context.Context, id uuid.UUID) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakePlaylists struct {
	byID  map[uuid.UUID]*model.Playlist
	calls int
}

var _ repository.PlaylistRepository = (*fakePlaylists)(nil)

func newFakePlaylists(ps ...model.Playlist) *fakePlaylists {
	f := &fakePlaylists{byID: map[uuid.UUID]*model.Playlist{}}
	for i := range ps {
		p := ps[i]
		f.byID[p.ID] = &p
	}
	return f
}

func (f *fakePlaylists) Create(_ context.Context, p *model.Playlist) error {
	f.calls++
	cpy := *p
	f.byID[p.ID] = &cpy
	return nil
}

func (f *fakePlaylists) Get(_ context.Context, id uuid.UUID) (*model.Playlist, error) {
	f.calls++
	p, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *p
	cpy.Videos = append([]uuid.UUID{}, p.Videos...)
	return &cpy, nil
}

func (f *fakePlaylists) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Playlist, error) {
	f.calls++
	out := []model.Playlist{}
	for _, p := range f.byID {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlaylists) Update(_ context.Context, id uuid.UUID, name, description string) error {
	f.calls++
	p, ok := f.byID[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.Name, p.Description = name, description
	return nil
}

func (f *fakePlaylists) Delete(_ context.Context, id uuid.UUID) error {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePlaylists) AppendVideo(_ context.Context, id, videoID uuid.UUID) error {
	f.calls++
	p, ok := f.byID[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.Videos = append(p.Videos, videoID)
	return nil
}

func (f *fakePlaylists) RemoveVideo(_ context.Context, id, videoID uuid.UUID) error {
	f.calls++
	p, ok := f.byID[id]
	if !ok {
		return errs.ErrNotFound
	}
	kept := p.Videos[:0]
	for _, v := range p.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	return nil
}

func newID() uuid.UUID { return uuid.Must(uuid.NewV4()) }
