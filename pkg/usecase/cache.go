package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// cacheEntry is the point-in-time snapshot of one list. emails and
// members are parallel: same length, same order, mutated together under
// the cache mutex.
type cacheEntry struct {
	list    *model.List
	emails  []string
	members []*model.Member
}

// Cache is the in-memory membership snapshot consulted for instant
// search and browse. It is never auto-invalidated; explicit rebuilds
// follow the operations that cannot be reflected incrementally.
type Cache struct {
	mu      sync.RWMutex
	entries map[types.ListID]*cacheEntry
	order   []types.ListID
	loaded  bool
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[types.ListID]*cacheEntry),
	}
}

// Loaded reports whether a build has completed since the last reset
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Reset drops all entries. Used after workflows whose effects cannot be
// patched incrementally and after failed builds.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[types.ListID]*cacheEntry)
	c.order = nil
	c.loaded = false
}

func (c *Cache) put(list *model.List, members []*model.Member) {
	emails := make([]string, len(members))
	for i, m := range members {
		emails[i] = m.Email.String()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[list.ID]; !exists {
		c.order = append(c.order, list.ID)
	}
	c.entries[list.ID] = &cacheEntry{list: list, emails: emails, members: members}
}

func (c *Cache) markLoaded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
}

// Drop removes one list's entry, e.g. after the list itself is deleted
func (c *Cache) Drop(listID types.ListID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[listID]; !exists {
		return
	}
	delete(c.entries, listID)
	for i, id := range c.order {
		if id == listID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// PatchAdd appends a member to a list's snapshot after a successful add.
// Already-present emails are skipped; the duplicate check is intentionally
// case-sensitive since cached emails keep their original case. A nil
// member gets a placeholder record so the parallel slices stay aligned.
func (c *Cache) PatchAdd(listID types.ListID, email types.EmailAddress, member *model.Member) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[listID]
	if !ok {
		return
	}
	for _, e := range entry.emails {
		if e == email.String() {
			return
		}
	}

	if member == nil {
		member = model.NewPlaceholderMember(email)
	}
	entry.emails = append(entry.emails, email.String())
	entry.members = append(entry.members, member)
}

// PatchRemove filters a member out of a list's snapshot after a
// successful remove. Matching is case-insensitive; both parallel slices
// change together.
func (c *Cache) PatchRemove(listID types.ListID, email types.EmailAddress) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[listID]
	if !ok {
		return
	}

	target := email.Normalized()
	emails := entry.emails[:0]
	members := entry.members[:0]
	for i, e := range entry.emails {
		if strings.ToLower(e) == target {
			continue
		}
		emails = append(emails, e)
		members = append(members, entry.members[i])
	}
	entry.emails = emails
	entry.members = members
}

// Lists returns the cached list snapshots in build order
func (c *Cache) Lists() []*model.List {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*model.List, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].list)
	}
	return out
}

// Members returns the cached member records of one list
func (c *Cache) Members(listID types.ListID) ([]*model.Member, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[listID]
	if !ok {
		return nil, false
	}
	out := make([]*model.Member, len(entry.members))
	copy(out, entry.members)
	return out, true
}

// FindMatch pairs a list with the member email that matched a search
type FindMatch struct {
	List  *model.List
	Email types.EmailAddress
}

// FindEmail scans the snapshot for lists containing the term. Exact
// matching compares normalized emails; partial matching is a
// case-insensitive substring test. No network calls, ever.
func (c *Cache) FindEmail(term string, partial bool) []FindMatch {
	needle := strings.ToLower(strings.TrimSpace(term))

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []FindMatch
	for _, id := range c.order {
		entry := c.entries[id]
		for i, e := range entry.emails {
			lower := strings.ToLower(e)
			hit := lower == needle
			if partial && !hit {
				hit = strings.Contains(lower, needle)
			}
			if hit {
				matches = append(matches, FindMatch{
					List:  entry.list,
					Email: entry.members[i].Email,
				})
				break
			}
		}
	}
	return matches
}

// Search returns cached lists whose display name or mail contains the
// query, case-insensitively
func (c *Cache) Search(q string) []*model.List {
	needle := strings.ToLower(q)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*model.List
	for _, id := range c.order {
		l := c.entries[id].list
		if strings.Contains(strings.ToLower(l.DisplayName), needle) ||
			strings.Contains(strings.ToLower(l.Mail.String()), needle) {
			out = append(out, l)
		}
	}
	return out
}

// Stats returns the cached list and member counts
func (c *Cache) Stats() (lists, members int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, entry := range c.entries {
		members += len(entry.emails)
	}
	return len(c.entries), members
}

// WarmCache builds the membership cache: one paginated list enumeration,
// then a bounded parallel member fetch. A list whose member fetch fails is
// cached with an empty member set rather than aborting the build.
func (m *Manager) WarmCache(ctx context.Context, progress ProgressFunc) error {
	logger := ctxlog.From(ctx)

	lists, err := m.ListAll(ctx)
	if err != nil {
		return goerr.Wrap(err, "cache build failed to enumerate lists")
	}

	m.cache.Reset()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	var done atomic.Int32
	total := len(lists)

	for _, dl := range lists {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			members, err := m.GetMembers(gctx, dl.ID)
			if err != nil {
				logger.Warn("failed to load members, caching empty set",
					"list", dl, "error", err)
				members = nil
			}
			m.cache.put(dl, members)

			d := int(done.Add(1))
			if progress != nil {
				progress(d, total, dl.DisplayName)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// A partial build is worse than no cache: reads would silently
		// miss the lists that never loaded
		m.cache.Reset()
		return goerr.Wrap(err, "cache build aborted")
	}

	m.cache.markLoaded()

	nLists, nMembers := m.cache.Stats()
	logger.Info("membership cache built", "lists", nLists, "members", nMembers)
	return nil
}
