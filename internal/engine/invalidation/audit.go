package invalidation

import (
	"sort"
	"strings"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/zerr"
)

// Gap is a read field that depends on an entity a mutation affects but that no
// prefix of the mutation's rule evicts.
type Gap struct {
	Mutation string
	Field    string
	Entities []domain.Entity
}

// Report is the outcome of an audit.
type Report struct {
	// Gaps are under-invalidations.
	Gaps []Gap
	// Unruled lists mutations without any rule.
	Unruled []string
	// DeadPrefixes lists "mutation: prefix" pairs that cover no known read field.
	DeadPrefixes []string
	// UnknownRetains lists "mutation: field" retain entries naming no known read field.
	UnknownRetains []string
}

// Clean reports whether the audit found nothing.
func (r Report) Clean() bool {
	return len(r.Gaps) == 0 && len(r.Unruled) == 0 && len(r.DeadPrefixes) == 0 && len(r.UnknownRetains) == 0
}

// Err returns domain.ErrRuleGap with counts when the report is not clean.
func (r Report) Err() error {
	if r.Clean() {
		return nil
	}
	err := zerr.With(domain.ErrRuleGap, "gaps", len(r.Gaps))
	err = zerr.With(err, "unruled", len(r.Unruled))
	err = zerr.With(err, "dead_prefixes", len(r.DeadPrefixes))
	return zerr.With(err, "unknown_retains", len(r.UnknownRetains))
}

// Covers reports whether a prefix evicts the cache keys of field. Keys are either the
// bare field name or the field name followed by "(", so both shapes are checked.
func Covers(prefix, field string) bool {
	return strings.HasPrefix(field, prefix) || strings.HasPrefix(field+"(", prefix)
}

// Audit checks a rule table against the read fields and their entity dependencies.
// A rule is complete when every read field depending on an affected entity is either
// covered by one of its prefixes or listed in its retain list.
func Audit(rules []domain.InvalidationRule, reads []domain.ReadDependency, mutations []string) Report {
	var report Report

	known := make(map[string]struct{}, len(reads))
	for _, r := range reads {
		known[r.Field] = struct{}{}
	}

	ruled := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		ruled[rule.Mutation] = struct{}{}

		retained := make(map[string]struct{}, len(rule.Retain))
		for _, f := range rule.Retain {
			retained[f] = struct{}{}
			if _, ok := known[f]; !ok {
				report.UnknownRetains = append(report.UnknownRetains, rule.Mutation+": "+f)
			}
		}

		for _, prefix := range rule.Prefixes {
			live := false
			for _, r := range reads {
				if Covers(prefix, r.Field) {
					live = true
					break
				}
			}
			if !live {
				report.DeadPrefixes = append(report.DeadPrefixes, rule.Mutation+": "+prefix)
			}
		}

		for _, r := range reads {
			if !r.DependsOn(rule.Affects) {
				continue
			}
			if _, ok := retained[r.Field]; ok {
				continue
			}
			if covered(rule.Prefixes, r.Field) {
				continue
			}
			report.Gaps = append(report.Gaps, Gap{
				Mutation: rule.Mutation,
				Field:    r.Field,
				Entities: intersect(r.Entities, rule.Affects),
			})
		}
	}

	for _, m := range mutations {
		if _, ok := ruled[m]; !ok {
			report.Unruled = append(report.Unruled, m)
		}
	}

	sort.Slice(report.Gaps, func(i, j int) bool {
		if report.Gaps[i].Mutation != report.Gaps[j].Mutation {
			return report.Gaps[i].Mutation < report.Gaps[j].Mutation
		}
		return report.Gaps[i].Field < report.Gaps[j].Field
	})
	sort.Strings(report.Unruled)
	sort.Strings(report.DeadPrefixes)
	sort.Strings(report.UnknownRetains)
	return report
}

func covered(prefixes []string, field string) bool {
	for _, p := range prefixes {
		if Covers(p, field) {
			return true
		}
	}
	return false
}

func intersect(a, b []domain.Entity) []domain.Entity {
	var out []domain.Entity
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
