package models

import (
	"sort"
	"strings"
	"sync"
)

// RecordStore is the date-keyed map of daily records. Records are copied
// on the way in and out so callers can never mutate shared state.
type RecordStore struct {
	mu   sync.RWMutex
	data map[string]*DayRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		data: make(map[string]*DayRecord),
	}
}

func (rs *RecordStore) Get(date string) (*DayRecord, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	rec, ok := rs.data[date]
	if !ok {
		return nil, false
	}
	copied := *rec
	copied.Activities = append([]ActivityEntry(nil), rec.Activities...)
	return &copied, true
}

func (rs *RecordStore) Set(date string, rec *DayRecord) {
	if rec == nil {
		return
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	copied := *rec
	copied.Activities = append([]ActivityEntry(nil), rec.Activities...)
	rs.data[date] = &copied
}

func (rs *RecordStore) Delete(date string) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if _, ok := rs.data[date]; !ok {
		return false
	}
	delete(rs.data, date)
	return true
}

func (rs *RecordStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.data)
}

// Month returns all records whose date carries the "YYYY-MM" prefix.
func (rs *RecordStore) Month(year, month int) map[string]*DayRecord {
	prefix := MonthPrefix(year, month)
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	result := make(map[string]*DayRecord)
	for date, rec := range rs.data {
		if strings.HasPrefix(date, prefix) {
			copied := *rec
			copied.Activities = append([]ActivityEntry(nil), rec.Activities...)
			result[date] = &copied
		}
	}
	return result
}

// Dates returns every stored record key in ascending order.
func (rs *RecordStore) Dates() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	dates := make([]string, 0, len(rs.data))
	for date := range rs.data {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func (rs *RecordStore) GetData() map[string]*DayRecord {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	copyMap := make(map[string]*DayRecord, len(rs.data))
	for date, rec := range rs.data {
		copied := *rec
		copied.Activities = append([]ActivityEntry(nil), rec.Activities...)
		copyMap[date] = &copied
	}
	return copyMap
}

func (rs *RecordStore) PutData(data map[string]*DayRecord) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if data == nil {
		data = make(map[string]*DayRecord)
	}
	rs.data = data
}
