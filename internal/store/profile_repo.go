package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/keiaapp/keia/ent"
	entprofile "github.com/keiaapp/keia/ent/profile"
	"github.com/keiaapp/keia/internal/profile"
)

// ProfileRepo implements profile.Store on the ent client. Writes are
// read-merge-write under a process-level mutex so concurrent patches for
// the same user can't interleave the skills-map merge; the live-update
// feed is an in-process listener list notified after each Write.
type ProfileRepo struct {
	client *ent.Client

	mu      sync.Mutex
	subs    map[string]map[int]func(profile.Profile)
	nextSub int
}

var _ profile.Store = (*ProfileRepo)(nil)

func newProfileRepo(client *ent.Client) *ProfileRepo {
	return &ProfileRepo{
		client: client,
		subs:   make(map[string]map[int]func(profile.Profile)),
	}
}

func (r *ProfileRepo) Read(ctx context.Context, userID string) (*profile.Profile, error) {
	row, err := r.client.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return fromEnt(row), nil
}

func (r *ProfileRepo) Write(ctx context.Context, userID string, patch profile.Patch) error {
	r.mu.Lock()

	current, err := r.client.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)

	switch {
	case err == nil:
		err = r.update(ctx, current, patch)
	case ent.IsNotFound(err):
		err = r.create(ctx, userID, patch)
	default:
		err = fmt.Errorf("query profile: %w", err)
	}

	if err != nil {
		r.mu.Unlock()
		return err
	}

	updated, readErr := r.client.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)

	var fns []func(profile.Profile)
	var snapshot *profile.Profile
	if readErr == nil {
		snapshot = fromEnt(updated)
		for _, fn := range r.subs[userID] {
			fns = append(fns, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(*snapshot)
	}
	return nil
}

func (r *ProfileRepo) Subscribe(userID string, fn func(profile.Profile)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subs[userID] == nil {
		r.subs[userID] = make(map[int]func(profile.Profile))
	}
	id := r.nextSub
	r.nextSub++
	r.subs[userID][id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs[userID], id)
	}
}

func (r *ProfileRepo) create(ctx context.Context, userID string, patch profile.Patch) error {
	c := r.client.Profile.Create().SetUserID(userID)

	if patch.Email != nil {
		c.SetEmail(*patch.Email)
	}
	if patch.Username != nil {
		c.SetUsername(*patch.Username)
	}
	if patch.Level != nil {
		c.SetLevel(*patch.Level)
	}
	if patch.XP != nil {
		c.SetXp(*patch.XP)
	}
	if patch.Streak != nil {
		c.SetStreak(*patch.Streak)
	}
	if len(patch.Skills) > 0 {
		skills := make(map[string]int, len(patch.Skills))
		for k, v := range patch.Skills {
			skills[k] = v
		}
		c.SetSkills(skills)
	}
	if patch.LastTestDate != nil {
		c.SetLastTestDate(*patch.LastTestDate)
	}

	if _, err := c.Save(ctx); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) update(ctx context.Context, current *ent.Profile, patch profile.Patch) error {
	u := current.Update()

	if patch.Email != nil {
		u.SetEmail(*patch.Email)
	}
	if patch.Username != nil {
		u.SetUsername(*patch.Username)
	}
	if patch.Level != nil {
		u.SetLevel(*patch.Level)
	}
	if patch.XP != nil {
		u.SetXp(*patch.XP)
	}
	if patch.Streak != nil {
		u.SetStreak(*patch.Streak)
	}
	if len(patch.Skills) > 0 {
		// Merge into the stored map; untouched skill keys survive.
		merged := make(map[string]int, len(current.Skills)+len(patch.Skills))
		for k, v := range current.Skills {
			merged[k] = v
		}
		for k, v := range patch.Skills {
			merged[k] = v
		}
		u.SetSkills(merged)
	}
	if patch.LastTestDate != nil {
		u.SetLastTestDate(*patch.LastTestDate)
	}

	if _, err := u.Save(ctx); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func fromEnt(row *ent.Profile) *profile.Profile {
	p := &profile.Profile{
		UserID:       row.UserID,
		Email:        row.Email,
		Username:     row.Username,
		Level:        row.Level,
		XP:           row.Xp,
		Streak:       row.Streak,
		Skills:       make(map[string]int, len(row.Skills)),
		LastTestDate: row.LastTestDate,
		CreatedAt:    row.CreatedAt,
	}
	for k, v := range row.Skills {
		p.Skills[k] = v
	}
	return p
}
