// Package invalidation evicts cached root query results after successful mutations,
// driven by a static rule table.
package invalidation

import (
	"errors"
	"sort"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/zerr"
)

type compiledRule struct {
	rule     domain.InvalidationRule
	matchers []domain.KeyMatcher
}

// Policy holds the rule table with its prefixes compiled once.
type Policy struct {
	store ports.CacheStore
	rules map[string]compiledRule
}

// NewPolicy compiles the rule table. Duplicate mutations and empty prefixes are
// rejected so a bad table fails at startup.
func NewPolicy(store ports.CacheStore, rules []domain.InvalidationRule) (*Policy, error) {
	p := &Policy{
		store: store,
		rules: make(map[string]compiledRule, len(rules)),
	}
	for _, r := range rules {
		if _, dup := p.rules[r.Mutation]; dup {
			return nil, zerr.With(zerr.New("duplicate invalidation rule"), "mutation", r.Mutation)
		}
		matchers := make([]domain.KeyMatcher, 0, len(r.Prefixes))
		for _, prefix := range r.Prefixes {
			m, err := domain.NewPrefixMatcher(prefix)
			if err != nil {
				return nil, zerr.With(err, "mutation", r.Mutation)
			}
			matchers = append(matchers, m)
		}
		p.rules[r.Mutation] = compiledRule{rule: r, matchers: matchers}
	}
	return p, nil
}

// Invalidate removes every cached key matched by the mutation's rule and returns the
// removed keys. It must only be called once the mutation is known to have succeeded.
// A mutation without a rule evicts nothing.
func (p *Policy) Invalidate(mutation string) ([]string, error) {
	cr, ok := p.rules[mutation]
	if !ok || len(cr.matchers) == 0 {
		return nil, nil
	}
	removed, err := p.store.DeleteMatching(cr.matchers)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidationFailed, err), "mutation", mutation)
	}
	return removed, nil
}

// Rule returns the rule of a mutation.
func (p *Policy) Rule(mutation string) (domain.InvalidationRule, bool) {
	cr, ok := p.rules[mutation]
	return cr.rule, ok
}

// Refetch returns the operation names to refetch after the mutation.
func (p *Policy) Refetch(mutation string) []string {
	return p.rules[mutation].rule.Refetch
}

// Rules returns the table sorted by mutation name.
func (p *Policy) Rules() []domain.InvalidationRule {
	out := make([]domain.InvalidationRule, 0, len(p.rules))
	for _, cr := range p.rules {
		out = append(out, cr.rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mutation < out[j].Mutation })
	return out
}
