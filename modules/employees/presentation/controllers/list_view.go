package controllers

import (
	"context"
	"strings"
	"sync"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/services"
)

// ListView holds the directory list state between requests: the cached
// collection, the active search query and the current page. Filtering and
// pagination happen locally against the cached collection; only Load, saves
// and deletes touch the remote directory.
type ListView struct {
	mu       sync.Mutex
	service  *services.EmployeeService
	pageSize int

	// seq orders concurrent loads so only the latest outcome is applied.
	seq     uint64
	loaded  bool
	all     []employee.Employee
	query   string
	page    int
	loadErr error
}

// ListSnapshot is the derived, render-ready view of the list state.
type ListSnapshot struct {
	Employees  []employee.Employee
	Query      string
	Page       int
	TotalPages int
	TotalCount int
	LoadErr    error
}

func NewListView(service *services.EmployeeService, pageSize int) *ListView {
	if pageSize < 1 {
		pageSize = 1
	}
	return &ListView{service: service, pageSize: pageSize}
}

// Load refreshes the collection from the directory. When loads overlap, only
// the most recently started one may write its outcome; earlier stragglers are
// dropped. A failed load keeps the previous collection visible and records
// the error.
func (l *ListView) Load(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	mine := l.seq
	l.mu.Unlock()

	all, err := l.service.GetAll(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if mine != l.seq {
		return nil
	}
	if err != nil {
		l.loadErr = err
		return err
	}
	l.all = all
	l.loaded = true
	l.loadErr = nil
	l.clampPage()
	return nil
}

// Search resets to the first page. The collection itself is untouched.
func (l *ListView) Search(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = strings.TrimSpace(query)
	l.page = 0
}

func (l *ListView) GoToPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = page
	l.clampPage()
}

func (l *ListView) NextPage() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page++
	l.clampPage()
}

func (l *ListView) PreviousPage() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page--
	l.clampPage()
}

// FindByID returns the cached record for id, or nil when the id is not part
// of the loaded collection.
func (l *ListView) FindByID(id string) employee.Employee {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.all {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// ApplySaved patches the cached collection in place after a successful save.
// A record the cache has never seen forces a reload, since the directory
// assigned it an id this view does not know the position of.
func (l *ListView) ApplySaved(ctx context.Context, saved employee.Employee) error {
	l.mu.Lock()
	for i, e := range l.all {
		if e.ID() == saved.ID() {
			l.all[i] = saved
			l.mu.Unlock()
			return nil
		}
	}
	l.mu.Unlock()
	return l.Load(ctx)
}

// Delete removes the record from the directory first and only then from the
// cached collection. On failure the row stays.
func (l *ListView) Delete(ctx context.Context, id string) error {
	if _, err := l.service.Delete(ctx, id); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.all {
		if e.ID() == id {
			l.all = append(l.all[:i:i], l.all[i+1:]...)
			break
		}
	}
	l.clampPage()
	return nil
}

// Snapshot derives the visible page from the cached collection.
func (l *ListView) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := l.filtered()
	total := len(filtered)
	totalPages := l.totalPages(total)
	page := l.page
	if page > totalPages-1 {
		page = totalPages - 1
	}
	if page < 0 {
		page = 0
	}

	start := page * l.pageSize
	end := start + l.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListSnapshot{
		Employees:  filtered[start:end],
		Query:      l.query,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
		LoadErr:    l.loadErr,
	}
}

// visiblePageWindow caps the pager strip length.
const visiblePageWindow = 10

// PageNumbers returns the window of page numbers the pager renders, at most
// visiblePageWindow entries with the current page inside the window.
func (s ListSnapshot) PageNumbers() []int {
	start := 0
	count := s.TotalPages
	if count > visiblePageWindow {
		start = s.Page - visiblePageWindow/2
		if start < 0 {
			start = 0
		}
		if start > s.TotalPages-visiblePageWindow {
			start = s.TotalPages - visiblePageWindow
		}
		count = visiblePageWindow
	}
	pages := make([]int, count)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

func (s ListSnapshot) HasPrevious() bool { return s.Page > 0 }
func (s ListSnapshot) HasNext() bool     { return s.Page < s.TotalPages-1 }

func (l *ListView) filtered() []employee.Employee {
	if l.query == "" {
		return l.all
	}
	needle := strings.ToLower(l.query)
	out := make([]employee.Employee, 0, len(l.all))
	for _, e := range l.all {
		// The query matches against name, email and client only.
		haystack := strings.ToLower(strings.Join([]string{
			e.FullName(),
			e.Email(),
			e.Client(),
		}, " "))
		if strings.Contains(haystack, needle) {
			out = append(out, e)
		}
	}
	return out
}

// totalPages never drops below one so an empty result still renders page 1.
func (l *ListView) totalPages(total int) int {
	pages := (total + l.pageSize - 1) / l.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (l *ListView) clampPage() {
	totalPages := l.totalPages(len(l.filtered()))
	if l.page > totalPages-1 {
		l.page = totalPages - 1
	}
	if l.page < 0 {
		l.page = 0
	}
}
