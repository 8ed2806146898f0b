package web

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/abhisek/quizgen/internal/quiz"
)

// quizCache holds generated quizzes between the form and submit requests.
// The cookie session only carries the quiz ID. Entries expire after ttl and
// the least recently used one is dropped once max is reached (0 = no cap).
type quizCache struct {
	lru *expirable.LRU[string, *quiz.Quiz]
}

func newQuizCache(ttl time.Duration, max int) *quizCache {
	return &quizCache{lru: expirable.NewLRU[string, *quiz.Quiz](max, nil, ttl)}
}

func (c *quizCache) Put(q *quiz.Quiz) {
	c.lru.Add(q.ID, q)
}

// Get returns the quiz for id, or nil if unknown or expired.
func (c *quizCache) Get(id string) *quiz.Quiz {
	q, ok := c.lru.Get(id)
	if !ok {
		return nil
	}
	return q
}

func (c *quizCache) Delete(id string) {
	c.lru.Remove(id)
}

// Len counts cached quizzes, including expired ones not yet swept.
func (c *quizCache) Len() int {
	return c.lru.Len()
}
