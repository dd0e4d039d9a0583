// Package view derives the displayed event list from raw events. It is
// pure: the same events, filter, search and "now" always produce the
// same sequence.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/siddhityagi17/event-manager/internal/model"
	"github.com/siddhityagi17/event-manager/pkg/client"
)

type Filter string

const (
	FilterAll      Filter = "all"
	FilterUpcoming Filter = "upcoming"
	FilterPast     Filter = "past"
)

func ParseFilter(value string) (Filter, bool) {
	switch Filter(value) {
	case FilterAll, FilterUpcoming, FilterPast:
		return Filter(value), true
	}
	return FilterAll, false
}

// DayKey truncates an event date to local midnight in loc. Events whose
// dates do not parse have no key and only show up under FilterAll.
func DayKey(date string, loc *time.Location) (int64, bool) {
	parsed, err := model.ParseEventDate(date)
	if err != nil {
		return 0, false
	}
	local := parsed.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.Unix(), true
}

type keyedEvent struct {
	event  client.Event
	key    int64
	hasKey bool
}

// Apply buckets by day key, filters by case-insensitive title search and
// sorts ascending, keyless events last.
func Apply(events []client.Event, filter Filter, search string, now time.Time) []client.Event {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).Unix()
	needle := strings.ToLower(search)

	keyed := make([]keyedEvent, 0, len(events))
	for _, e := range events {
		key, ok := DayKey(e.Date, loc)

		switch filter {
		case FilterUpcoming:
			if !ok || key < today {
				continue
			}
		case FilterPast:
			if !ok || key >= today {
				continue
			}
		}

		if needle != "" && !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}

		keyed = append(keyed, keyedEvent{event: e, key: key, hasKey: ok})
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		a, b := keyed[i], keyed[j]
		if a.hasKey != b.hasKey {
			return a.hasKey
		}
		return a.key < b.key
	})

	result := make([]client.Event, 0, len(keyed))
	for _, k := range keyed {
		result = append(result, k.event)
	}
	return result
}
