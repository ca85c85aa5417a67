// Package history implements the ordered and deduplicated list of
// past IP lookups, together with the selection used for bulk deletion.
package history

import (
	"sync"

	"github.com/qdm12/geotrack/internal/models"
)

// Ledger holds history entries most recent first, with at most one
// entry per IP address. It is safe for concurrent use.
type Ledger struct {
	entries  []models.HistoryEntry
	selected map[string]struct{}
	sync.RWMutex
}

func New() *Ledger {
	return &Ledger{
		selected: make(map[string]struct{}),
	}
}

// Add removes any existing entry for the entry IP address and
// inserts the entry at the front of the ledger.
func (l *Ledger) Add(entry models.HistoryEntry) {
	l.Lock()
	defer l.Unlock()
	entries := make([]models.HistoryEntry, 0, len(l.entries)+1)
	entries = append(entries, entry)
	for _, existing := range l.entries {
		if existing.IP == entry.IP {
			continue
		}
		entries = append(entries, existing)
	}
	l.entries = entries
}

// Remove removes the entries for the given IP addresses.
// Removed IP addresses are also dropped from the selection.
func (l *Ledger) Remove(ips ...string) {
	set := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		set[ip] = struct{}{}
	}

	l.Lock()
	defer l.Unlock()
	l.removeSet(set)
}

func (l *Ledger) removeSet(set map[string]struct{}) {
	kept := l.entries[:0]
	for _, entry := range l.entries {
		if _, remove := set[entry.IP]; remove {
			delete(l.selected, entry.IP)
			continue
		}
		kept = append(kept, entry)
	}
	l.entries = kept
}

// Select adds the IP address to the selection.
// It is a no-op if no entry exists for the IP address.
func (l *Ledger) Select(ip string) {
	l.Lock()
	defer l.Unlock()
	if l.indexOf(ip) == -1 {
		return
	}
	l.selected[ip] = struct{}{}
}

func (l *Ledger) Deselect(ip string) {
	l.Lock()
	defer l.Unlock()
	delete(l.selected, ip)
}

// Toggle selects the IP address if it is not selected,
// and deselects it otherwise.
func (l *Ledger) Toggle(ip string) {
	l.Lock()
	defer l.Unlock()
	if _, ok := l.selected[ip]; ok {
		delete(l.selected, ip)
		return
	} else if l.indexOf(ip) == -1 {
		return
	}
	l.selected[ip] = struct{}{}
}

func (l *Ledger) IsSelected(ip string) (selected bool) {
	l.RLock()
	defer l.RUnlock()
	_, selected = l.selected[ip]
	return selected
}

// Selected returns the selected IP addresses in ledger order.
func (l *Ledger) Selected() (ips []string) {
	l.RLock()
	defer l.RUnlock()
	ips = make([]string, 0, len(l.selected))
	for _, entry := range l.entries {
		if _, ok := l.selected[entry.IP]; ok {
			ips = append(ips, entry.IP)
		}
	}
	return ips
}

// DeleteSelected removes all the selected entries and
// clears the selection. It returns the number of entries removed.
func (l *Ledger) DeleteSelected() (deleted int) {
	l.Lock()
	defer l.Unlock()
	before := len(l.entries)
	l.removeSet(l.selected)
	l.selected = make(map[string]struct{})
	return before - len(l.entries)
}

// Get returns the entry for the IP address, if any.
func (l *Ledger) Get(ip string) (entry models.HistoryEntry, ok bool) {
	l.RLock()
	defer l.RUnlock()
	i := l.indexOf(ip)
	if i == -1 {
		return entry, false
	}
	return l.entries[i], true
}

// Entries returns a copy of the entries, most recent first.
func (l *Ledger) Entries() (entries []models.HistoryEntry) {
	l.RLock()
	defer l.RUnlock()
	entries = make([]models.HistoryEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *Ledger) Len() int {
	l.RLock()
	defer l.RUnlock()
	return len(l.entries)
}

func (l *Ledger) indexOf(ip string) int {
	for i, entry := range l.entries {
		if entry.IP == ip {
			return i
		}
	}
	return -1
}
