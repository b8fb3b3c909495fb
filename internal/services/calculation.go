package services

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"growth-rate-calculator/internal/growth"
	"growth-rate-calculator/internal/logger"
	"growth-rate-calculator/internal/models"
)

const DefaultCacheSize = 128

// CalculationService evaluates field text through the growth calculator and
// memoizes recent results in memory
type CalculationService struct {
	cache  *lru.Cache[models.RawInputs, growth.Result]
	logger logger.Logger

	mu    sync.RWMutex
	stats CalculationStats
}

// CalculationStats counts evaluations by outcome
type CalculationStats struct {
	Evaluations    int64
	CacheHits      int64
	Succeeded      int64
	ParseFailures  int64
	DomainFailures int64
	LastEvaluation time.Time
}

// NewCalculationService creates a service with a bounded result cache
func NewCalculationService(cacheSize int, log logger.Logger) *CalculationService {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if log == nil {
		log = logger.Nop{}
	}

	// lru.New only fails for a non-positive size
	cache, _ := lru.New[models.RawInputs, growth.Result](cacheSize)

	return &CalculationService{
		cache:  cache,
		logger: log,
	}
}

// Evaluate computes the displayed result for the given field text
func (cs *CalculationService) Evaluate(in models.RawInputs) growth.Result {
	result, hit := cs.cache.Get(in)
	if !hit {
		result = growth.Evaluate(in.Current, in.Initial, in.Years)
		cs.cache.Add(in, result)
	}

	cs.record(result, hit)

	if result.Kind() == growth.KindDomain {
		cs.logger.Debug("Growth rate undefined", map[string]interface{}{
			"current": in.Current,
			"initial": in.Initial,
			"years":   in.Years,
			"error":   result.Err.Error(),
		})
	}

	return result
}

func (cs *CalculationService) record(result growth.Result, hit bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.stats.Evaluations++
	if hit {
		cs.stats.CacheHits++
	}
	switch result.Kind() {
	case growth.KindOK:
		cs.stats.Succeeded++
	case growth.KindParse:
		cs.stats.ParseFailures++
	case growth.KindDomain:
		cs.stats.DomainFailures++
	}
	cs.stats.LastEvaluation = time.Now()
}

// GetStats returns a snapshot of the evaluation counters
func (cs *CalculationService) GetStats() CalculationStats {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.stats
}

// CacheLen returns the number of memoized results
func (cs *CalculationService) CacheLen() int {
	return cs.cache.Len()
}

// Shutdown drops memoized results and logs the final counters
func (cs *CalculationService) Shutdown() {
	stats := cs.GetStats()
	cs.cache.Purge()

	cs.logger.Info("Calculation service stopped", map[string]interface{}{
		"evaluations":     stats.Evaluations,
		"cache_hits":      stats.CacheHits,
		"succeeded":       stats.Succeeded,
		"parse_failures":  stats.ParseFailures,
		"domain_failures": stats.DomainFailures,
	})
}
