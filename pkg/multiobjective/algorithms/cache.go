package algorithms

import (
	"github.com/patrickmn/go-cache"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

type evaluation struct {
	vector     []float64
	objectives framework.ObjectiveSpacePoint
}

// evaluationCache memoizes decode+evaluate by genome. Evaluators are pure, so
// entries never expire.
type evaluationCache struct {
	entries *cache.Cache
	hits    int
}

func newEvaluationCache() *evaluationCache {
	return &evaluationCache{entries: cache.New(cache.NoExpiration, 0)}
}

func (c *evaluationCache) get(g framework.Genome) (evaluation, bool) {
	v, ok := c.entries.Get(g.String())
	if !ok {
		return evaluation{}, false
	}
	c.hits++
	return v.(evaluation), true
}

func (c *evaluationCache) set(g framework.Genome, e evaluation) {
	c.entries.Set(g.String(), e, cache.NoExpiration)
}
