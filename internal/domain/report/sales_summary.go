package report

import "time"

// SalesRecord is a read model row for statistics: one sale joined with the
// name of the fruit it references. Timestamps are already in local time.
type SalesRecord struct {
	FruitName string
	Quantity  int64
	Total     int64
	SoldAt    time.Time
}

// FruitBreakdown accumulates the per-fruit share of a period bucket
type FruitBreakdown struct {
	Total    int64 `json:"total"`
	Quantity int64 `json:"quantity"`
}

// PeriodBucket holds the running total for one calendar period plus a
// per-fruit breakdown, keyed by fruit name in discovery order.
type PeriodBucket struct {
	Label       string
	PeriodTotal int64
	fruitOrder  []string
	breakdown   map[string]*FruitBreakdown
}

// NewPeriodBucket creates an empty bucket for the given period label
func NewPeriodBucket(label string) *PeriodBucket {
	return &PeriodBucket{
		Label:     label,
		breakdown: make(map[string]*FruitBreakdown),
	}
}

// Breakdown returns the accumulator for a fruit name, inserting an empty
// entry on first encounter. The accessor is idempotent.
func (b *PeriodBucket) Breakdown(fruitName string) *FruitBreakdown {
	if entry, ok := b.breakdown[fruitName]; ok {
		return entry
	}
	entry := &FruitBreakdown{}
	b.breakdown[fruitName] = entry
	b.fruitOrder = append(b.fruitOrder, fruitName)
	return entry
}

// FruitNames returns the breakdown keys in discovery order
func (b *PeriodBucket) FruitNames() []string {
	return b.fruitOrder
}

// Get returns the breakdown entry for a fruit name without inserting
func (b *PeriodBucket) Get(fruitName string) (*FruitBreakdown, bool) {
	entry, ok := b.breakdown[fruitName]
	return entry, ok
}

// Accumulate adds one record's total and quantity to the bucket
func (b *PeriodBucket) Accumulate(fruitName string, total, quantity int64) {
	b.PeriodTotal += total
	entry := b.Breakdown(fruitName)
	entry.Total += total
	entry.Quantity += quantity
}

// PeriodBuckets is an ordered mapping from period label to bucket.
// Buckets are created lazily and iterate in discovery order.
type PeriodBuckets struct {
	order   []string
	buckets map[string]*PeriodBucket
}

// NewPeriodBuckets creates an empty ordered bucket map
func NewPeriodBuckets() *PeriodBuckets {
	return &PeriodBuckets{buckets: make(map[string]*PeriodBucket)}
}

// Bucket returns the bucket for a period label, inserting an empty bucket
// on first encounter
func (p *PeriodBuckets) Bucket(label string) *PeriodBucket {
	if bucket, ok := p.buckets[label]; ok {
		return bucket
	}
	bucket := NewPeriodBucket(label)
	p.buckets[label] = bucket
	p.order = append(p.order, label)
	return bucket
}

// Get returns the bucket for a label without inserting
func (p *PeriodBuckets) Get(label string) (*PeriodBucket, bool) {
	bucket, ok := p.buckets[label]
	return bucket, ok
}

// Labels returns the period labels in discovery order
func (p *PeriodBuckets) Labels() []string {
	return p.order
}

// Len returns the number of buckets
func (p *PeriodBuckets) Len() int {
	return len(p.order)
}

// Summary is the three-part statistics output: the all-time grand total,
// a monthly breakdown and a daily breakdown.
type Summary struct {
	AllTimeTotal int64
	Monthly      *PeriodBuckets
	Daily        *PeriodBuckets
}
