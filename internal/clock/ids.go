package clock

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out entity ids and the numeric strings used by the
// simulated SEFAZ authorization (access key, protocol).
type IDGenerator interface {
	NewID(prefix string) string
	Digits(n int) string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID(prefix string) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	if prefix == "" {
		return short
	}
	return prefix + "-" + short
}

func (UUIDGenerator) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for b.Len() < n {
		id := uuid.New()
		for _, octet := range id {
			if b.Len() == n {
				break
			}
			b.WriteByte('0' + octet%10)
		}
	}
	return b.String()
}

// Sequence is a deterministic generator: ids count up from 1 per prefix.
type Sequence struct {
	mu       sync.Mutex
	counters map[string]int
	digits   int
}

func NewSequence() *Sequence {
	return &Sequence{counters: map[string]int{}}
}

func (s *Sequence) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[prefix]++
	if prefix == "" {
		return fmt.Sprintf("%03d", s.counters[prefix])
	}
	return fmt.Sprintf("%s-%03d", prefix, s.counters[prefix])
}

func (s *Sequence) Digits(n int) string {
	s.mu.Lock()
	s.digits++
	seq := s.digits
	s.mu.Unlock()

	out := fmt.Sprintf("%0*d", n, seq)
	return out[len(out)-n:]
}
