package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"

	"github.com/gin-gonic/gin"
)

// limiter is a per-IP sliding-window counter. Each instance owns its map and
// purges expired entries so IPs that never return are not kept forever.
type limiter struct {
	limit   int
	window  time.Duration
	mensaje string

	mu      sync.Mutex
	ventana map[string]*ventanaIP
}

type ventanaIP struct {
	count int
	hasta time.Time
}

func newLimiter(limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		limit:   limit,
		window:  window,
		mensaje: mensaje,
		ventana: make(map[string]*ventanaIP),
	}
	go l.purge()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		l.mu.Lock()
		v, ok := l.ventana[ip]
		if !ok || now.After(v.hasta) {
			v = &ventanaIP{hasta: now.Add(l.window)}
			l.ventana[ip] = v
		}
		v.count++
		excedido := v.count > l.limit
		retry := v.hasta
		l.mu.Unlock()

		if excedido {
			c.Header("Retry-After", retry.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, v := range l.ventana {
			if now.After(v.hasta) {
				delete(l.ventana, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimiter caps requests per IP across the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter throttles credential guessing: 20 attempts per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}
