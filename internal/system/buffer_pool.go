package system

import (
	"image"
	"sync"
	"sync/atomic"
)

// ImagePool переиспользует кадровые буферы *image.RGBA, чтобы рендер тысяч
// кадров не нагружал GC. Буферы группируются по размеру.
type ImagePool struct {
	pools  map[image.Point]*sync.Pool
	mu     sync.RWMutex
	allocs atomic.Int64
	gets   atomic.Int64
}

var globalPool = NewImagePool()

func NewImagePool() *ImagePool {
	return &ImagePool{pools: make(map[image.Point]*sync.Pool)}
}

// GetImage возвращает буфер из общего пула
func GetImage(rect image.Rectangle) *image.RGBA {
	return globalPool.Get(rect)
}

// PutImage возвращает буфер в общий пул
func PutImage(img *image.RGBA) {
	globalPool.Put(img)
}

// PoolStats - сколько буферов выдано и сколько из них пришлось выделить
func PoolStats() (gets, allocs int64) {
	return globalPool.gets.Load(), globalPool.allocs.Load()
}

// Get возвращает буфер нужного размера. Содержимое не очищается:
// кадр всё равно целиком закрашивается фоном.
func (p *ImagePool) Get(rect image.Rectangle) *image.RGBA {
	p.gets.Add(1)
	size := rect.Size()

	p.mu.RLock()
	pool, exists := p.pools[size]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double check
		pool, exists = p.pools[size]
		if !exists {
			pool = &sync.Pool{
				New: func() any {
					p.allocs.Add(1)
					return image.NewRGBA(image.Rectangle{Max: size})
				},
			}
			p.pools[size] = pool
		}
		p.mu.Unlock()
	}

	img := pool.Get().(*image.RGBA)
	img.Rect = image.Rectangle{Min: rect.Min, Max: rect.Min.Add(size)}
	return img
}

func (p *ImagePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	p.mu.RLock()
	pool, exists := p.pools[img.Rect.Size()]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
