package image

import "sync"

// Pool recycles RGBA8 buffers between compositing calls.
//
// Buffers are grouped by dimensions. Resized layers are short-lived scratch
// space, so reusing them avoids an allocation per mismatched layer when the
// same canvas size is composited repeatedly.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize int // max buffers per bucket, 0 means unlimited
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool keeping at most maxPerBucket buffers of each size.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageBuf),
		maxSize: maxPerBucket,
	}
}

// Get returns an RGBA8 buffer of the given size.
// Contents of a recycled buffer are undefined; callers overwrite every pixel.
// Returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *ImageBuf {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	if bucket := p.buckets[key]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewImageBuf(width, height)
	if err != nil {
		return nil
	}
	return buf
}

// Put hands a buffer back for reuse. The caller must not touch it afterwards.
// nil buffers and buffers beyond the bucket limit are dropped.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of idle buffers held for the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}
