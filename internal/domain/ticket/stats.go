package ticket

import (
	"fmt"
	"sort"
	"time"

	"suspensos/internal/shared/biztime"
)

// EnvironmentStat aggregates tickets of one environment.
type EnvironmentStat struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Critical  int    `json:"critical"`
	Scheduled int    `json:"scheduled"`
}

// CountStat is a generic name/value bucket.
type CountStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TimelinePoint is one bucket of the suspension timeline.
type TimelinePoint struct {
	Date       string `json:"date"`
	Suspensos  int    `json:"suspensos"`
	Agendados  int    `json:"agendados"`
	Concluidos int    `json:"concluidos"`
}

// Environments returns the sorted unique environment names.
func Environments(tickets []SuspendedTicket) []string {
	seen := map[string]bool{}
	var unique []string
	for _, t := range tickets {
		if t.Environment != "" && !seen[t.Environment] {
			seen[t.Environment] = true
			unique = append(unique, t.Environment)
		}
	}
	sort.Strings(unique)
	return unique
}

// StatsByEnvironment aggregates totals, critical-priority counts and
// scheduled counts per environment.
func StatsByEnvironment(tickets []SuspendedTicket) []EnvironmentStat {
	environments := Environments(tickets)
	stats := make([]EnvironmentStat, 0, len(environments))
	for _, env := range environments {
		stat := EnvironmentStat{Name: env}
		for _, t := range tickets {
			if t.Environment != env {
				continue
			}
			stat.Total++
			if NormalizePriority(t.Priority) == "critica" {
				stat.Critical++
			}
			if NormalizeStatus(t.Status) == "agendado" {
				stat.Scheduled++
			}
		}
		stats = append(stats, stat)
	}
	return stats
}

// StatsByReason counts tickets per suspension reason, first-seen order.
func StatsByReason(tickets []SuspendedTicket) []CountStat {
	return countBy(tickets, func(t SuspendedTicket) string {
		if t.SuspensionReason == "" {
			return FallbackReason
		}
		return t.SuspensionReason
	})
}

// StatsByPriority counts tickets per display priority bucket, first-seen
// order.
func StatsByPriority(tickets []SuspendedTicket) []CountStat {
	return countBy(tickets, func(t SuspendedTicket) string {
		return PriorityLabel(t.Priority)
	})
}

func countBy(tickets []SuspendedTicket, key func(SuspendedTicket) string) []CountStat {
	index := map[string]int{}
	var stats []CountStat
	for _, t := range tickets {
		name := key(t)
		if i, ok := index[name]; ok {
			stats[i].Value++
			continue
		}
		index[name] = len(stats)
		stats = append(stats, CountStat{Name: name, Value: 1})
	}
	return stats
}

// Timeline buckets the last seven business-timezone days ending at now,
// oldest first, labelled dd/mm.
func Timeline(tickets []SuspendedTicket, now time.Time) []TimelinePoint {
	points := make([]TimelinePoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := biztime.StartOfDay(now.AddDate(0, 0, -i))
		point := TimelinePoint{Date: day.Format("02/01")}
		fillTimelinePoint(&point, tickets, day, biztime.SameBizDay)
		points = append(points, point)
	}
	return points
}

// Portuguese month abbreviations for the monthly timeline labels.
var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthlyTimeline buckets the last six business-timezone months ending at
// now's month, oldest first.
func MonthlyTimeline(tickets []SuspendedTicket, now time.Time) []TimelinePoint {
	points := make([]TimelinePoint, 0, 6)
	for i := 5; i >= 0; i-- {
		// Shift from the first of the month so 31st-day months cannot skew
		// the subtraction.
		month := biztime.StartOfMonth(now).AddDate(0, -i, 0)
		point := TimelinePoint{Date: fmt.Sprintf("%s/%d", monthAbbrev[month.Month()-1], month.Year())}
		fillTimelinePoint(&point, tickets, month, biztime.SameBizMonth)
		points = append(points, point)
	}
	return points
}

func fillTimelinePoint(point *TimelinePoint, tickets []SuspendedTicket, bucket time.Time, same func(a, b time.Time) bool) {
	for _, t := range tickets {
		suspendedAt, suspendedOK := ParseReportTime(t.SuspendedAt)
		if suspendedOK && same(suspendedAt, bucket) {
			point.Suspensos++
			if NormalizeStatus(t.Status) == "concluido" {
				point.Concluidos++
			}
		}
		if t.ScheduledDate != "" && NormalizeStatus(t.Status) == "agendado" {
			if scheduledAt, ok := ParseReportTime(t.ScheduledDate); ok && same(scheduledAt, bucket) {
				point.Agendados++
			}
		}
	}
}
